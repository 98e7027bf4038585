/*
 * swpoll device model tests
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

package device_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telenornms/swpoll/device"
)

func TestAddMacDedupe(t *testing.T) {
	d := device.New("10.0.0.1")
	d.AddMac(device.MacEntry{Port: 3, MAC: "00:1b:21:3a:4f:5c", VLAN: 2})
	d.AddMac(device.MacEntry{Port: 4, MAC: "00:1b:21:3a:4f:5d", VLAN: 2})
	d.AddMac(device.MacEntry{Port: 5, MAC: "00:1b:21:3a:4f:5c", VLAN: 2})
	d.AddMac(device.MacEntry{Port: 6, MAC: "00:1b:21:3a:4f:5c", VLAN: 77})

	assert.Equal(t, []device.MacEntry{
		{Port: 5, MAC: "00:1b:21:3a:4f:5c", VLAN: 2},
		{Port: 4, MAC: "00:1b:21:3a:4f:5d", VLAN: 2},
		{Port: 6, MAC: "00:1b:21:3a:4f:5c", VLAN: 77},
	}, d.MacTable)
}

func TestPortLookup(t *testing.T) {
	d := device.New("10.0.0.1")
	d.Ports = []*device.Port{{Number: 1}, {Number: 2}, {Number: 49}}
	d.MacTable = []device.MacEntry{{Port: 2}, {Port: 2}, {Port: 49}}
	d.CountMacs()

	assert.Nil(t, d.Port(3))
	assert.Equal(t, 2, d.Port(2).MacCount)
	assert.Equal(t, 1, d.Port(49).MacCount)
	assert.Equal(t, 0, d.Port(1).MacCount)
}

func TestUplinkPorts(t *testing.T) {
	d := device.New("10.0.0.1")
	d.Uplinks[28] = true
	d.Uplinks[3] = true
	assert.Equal(t, []int{3, 28}, d.UplinkPorts())
}

func TestAddMacLargeTable(t *testing.T) {
	d := device.New("10.0.0.1")
	for i := 0; i < 40000; i++ {
		d.AddMac(device.MacEntry{Port: 1, MAC: fmt.Sprintf("00:1b:%02x:%02x:%02x:00", i>>16, (i>>8)&0xff, i&0xff), VLAN: 2})
	}
	for i := 0; i < 40000; i += 2 {
		d.AddMac(device.MacEntry{Port: 7, MAC: fmt.Sprintf("00:1b:%02x:%02x:%02x:00", i>>16, (i>>8)&0xff, i&0xff), VLAN: 2})
	}
	assert.Len(t, d.MacTable, 40000)
	assert.Equal(t, 7, d.MacTable[0].Port)
	assert.Equal(t, 1, d.MacTable[1].Port)
	assert.Equal(t, "00:1b:00:9c:3f:00", d.MacTable[39999].MAC, "first seen order kept")
}

func TestAddMacAfterAssign(t *testing.T) {
	d := device.New("10.0.0.1")
	d.MacTable = []device.MacEntry{{Port: 3, MAC: "00:1b:21:3a:4f:5c", VLAN: 2}}
	d.AddMac(device.MacEntry{Port: 9, MAC: "00:1b:21:3a:4f:5c", VLAN: 2})
	d.AddMac(device.MacEntry{Port: 4, MAC: "00:1b:21:3a:4f:5d", VLAN: 2})
	assert.Equal(t, []device.MacEntry{
		{Port: 9, MAC: "00:1b:21:3a:4f:5c", VLAN: 2},
		{Port: 4, MAC: "00:1b:21:3a:4f:5d", VLAN: 2},
	}, d.MacTable)
}
