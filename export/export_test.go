/*
 * swpoll skogul export tests
 *
 * Copyright (c) 2022 Telenor Norge AS
 *
 * This library is free software; you can redistribute it and/or
 * modify it under the terms of the GNU Lesser General Public
 * License as published by the Free Software Foundation; either
 * version 2.1 of the License, or (at your option) any later version.
 *
 * This library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public
 * License along with this library; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
 * 02110-1301  USA
 */

package export_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telenornms/skogul"
	"github.com/telenornms/swpoll/device"
	"github.com/telenornms/swpoll/export"
)

type capture struct {
	got []*skogul.Container
	err error
}

func (c *capture) TransformAndSend(cont *skogul.Container) error {
	c.got = append(c.got, cont)
	return c.err
}

func testDevice() *device.Device {
	d := device.New("10.0.0.1")
	d.Name = "sw-osl-core-01"
	d.Variant = "a3com"
	d.STPRoot = true
	d.Ports = []*device.Port{
		{Number: 1, Name: "GigabitEthernet1/0/1", Tagged: []int{}, Untagged: []int{1}, InOctets: device.NoCounter},
		{Number: 24, Name: "GigabitEthernet1/0/24", Tagged: []int{2, 20}, Untagged: []int{}},
	}
	d.Uplinks[24] = true
	d.Neighbors[24] = &device.Neighbor{LocalPort: 24, RemoteMAC: "00:11:22:33:44:aa", RemotePort: "26", CapEnabled: 40}
	d.MacTable = []device.MacEntry{{Port: 1, MAC: "00:11:22:33:44:01", VLAN: 1, IP: "10.20.0.11"}}
	d.L3Interfaces[1] = device.L3Interface{IP: "10.20.0.1", Mask: "255.255.255.0", AdminState: "1"}
	return d
}

func TestMetrics(t *testing.T) {
	now := time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC)
	ms := export.Metrics(testDevice(), now)
	require.Len(t, ms, 4)
	for _, m := range ms {
		assert.Equal(t, "10.0.0.1", m.Metadata["host"])
		require.NotNil(t, m.Time)
		assert.True(t, now.Equal(*m.Time))
	}

	dev := ms[0]
	assert.Equal(t, "device", dev.Metadata["kind"])
	assert.Equal(t, "a3com", dev.Metadata["variant"])
	assert.Equal(t, true, dev.Data["stp_root"])
	assert.Equal(t, []int{24}, dev.Data["uplinks"])
	assert.Contains(t, dev.Data, "l3")

	p1, p24 := ms[1], ms[2]
	assert.Equal(t, "port", p1.Metadata["kind"])
	assert.Equal(t, 1, p1.Metadata["port"])
	assert.Equal(t, false, p1.Data["uplink"])
	assert.NotContains(t, p1.Data, "neighbor")
	assert.NotContains(t, p1.Data, "in_octets", "missing counters are left out")
	assert.Equal(t, uint64(0), p24.Data["in_octets"])
	assert.Equal(t, true, p24.Data["uplink"])
	assert.Equal(t, []int{2, 20}, p24.Data["tagged"])
	require.Contains(t, p24.Data, "neighbor")
	assert.Equal(t, "26", p24.Data["neighbor"].(map[string]interface{})["port"])

	mac := ms[3]
	assert.Equal(t, "mac", mac.Metadata["kind"])
	assert.Equal(t, "00:11:22:33:44:01", mac.Metadata["mac"])
	assert.Equal(t, "10.20.0.11", mac.Data["ip"])
}

func TestSend(t *testing.T) {
	c := &capture{}
	require.NoError(t, export.Send(c, nil, time.Now()))
	assert.Empty(t, c.got, "empty batches are not sent")

	require.NoError(t, export.Send(c, []*device.Device{testDevice(), device.New("10.0.0.2")}, time.Now()))
	require.Len(t, c.got, 1)
	assert.Len(t, c.got[0].Metrics, 5)

	c.err = errors.New("broker down")
	err := export.Send(c, []*device.Device{testDevice()}, time.Now())
	assert.ErrorIs(t, err, c.err)
}
