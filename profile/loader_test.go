/*
 * swpoll switch profile tests
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

package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
	"github.com/telenornms/swpoll/omap"
	"github.com/telenornms/swpoll/profile"
	"github.com/telenornms/swpoll/replay"
)

func load(t *testing.T, opts profile.Options) *profile.Loader {
	t.Helper()
	open := func(host string, community string) (swpoll.Session, error) {
		return replay.Open("testdata/4500g.walk")
	}
	l, err := profile.DefaultRegistry().Factory(open, "10.20.0.2", "public", opts)
	require.NoError(t, err)
	require.Equal(t, "3Com-4500G", l.Variant.Name)
	require.NoError(t, l.Load())
	return l
}

func TestLoadGeneral(t *testing.T) {
	d := load(t, profile.Options{}).Device
	assert.Equal(t, "10.20.0.2", d.Host)
	assert.Equal(t, "10.20.0.2", d.IP)
	assert.Equal(t, "sw-osl-core-01", d.Name)
	assert.Equal(t, "SW-01", d.Alias)
	assert.Equal(t, "48:12:16:25.82", d.Uptime)
	assert.Equal(t, "00:1e:c1:dc:00:00", d.MAC)
	assert.Equal(t, 0, d.STP)
	assert.True(t, d.STPRoot)
	assert.Equal(t, "4500G PWR 24-Port", d.Physical)
	assert.Equal(t, "3Com OS V5.20", d.SoftwareVersion)
	assert.Equal(t, "YKWFBGF3A5C80", d.Serial)
	assert.Equal(t, "3Com", d.Vendor)
	assert.Equal(t, "3CR17771-91", d.Model)
}

func TestLoadPorts(t *testing.T) {
	d := load(t, profile.Options{}).Device
	require.Len(t, d.Ports, 28, "the vlan interface is not a port")
	assert.Equal(t, []int{1, 2, 20, 77}, d.VlanIDs)
	for i, p := range d.Ports {
		assert.Equal(t, i+1, p.Number)
	}

	p19 := d.Port(19)
	require.NotNil(t, p19)
	assert.Equal(t, []int{77}, p19.Tagged)
	assert.Equal(t, []int{20}, p19.Untagged)
	assert.Equal(t, 20, p19.PVID)

	p24 := d.Port(24)
	require.NotNil(t, p24)
	assert.Equal(t, "GigabitEthernet1/0/24", p24.Name)
	assert.Equal(t, "uplink sw-osl-02", p24.Alias)
	assert.Equal(t, []int{2, 20, 77}, p24.Tagged)
	assert.Equal(t, []int{1}, p24.Untagged)
	assert.Equal(t, 1000, p24.Speed)
	assert.Equal(t, 3, p24.Duplex)
	assert.Equal(t, 1, p24.Oper)
	assert.Equal(t, int64(2400), p24.LastChange)
	assert.Equal(t, uint64(5000000000), p24.InOctets, "high capacity counter wins")
	assert.Equal(t, uint64(48000), p24.OutOctets, "low counter wins when larger")
	assert.Equal(t, uint64(7), p24.OutDiscards)
	assert.Equal(t, 5, p24.STPState)
	assert.Equal(t, 1, p24.STPAdmin)
	assert.Equal(t, "3", p24.VlanType)
	assert.Equal(t, "00:1e:c1:dc:00:18", p24.PhysAddress)

	p5 := d.Port(5)
	assert.Equal(t, 1, p5.PoEAdmin)
	assert.Equal(t, 3, p5.PoEDetection)
	assert.Equal(t, 3, p5.PoEClass)
	assert.Equal(t, 4200, p5.PoEPower)
	assert.Equal(t, 2, d.Port(1).PoEDetection)
	assert.Equal(t, -1, d.Port(1).PoEPower)

	p25 := d.Port(25)
	assert.Equal(t, 0, p25.Speed)
	assert.Equal(t, -1, p25.PoEAdmin, "no PoE on the SFP ports")
	assert.Equal(t, []int{}, p25.Tagged)
	assert.Equal(t, []int{1}, p25.Untagged)

	p26 := d.Port(26)
	assert.Equal(t, "2", p26.VlanType)
	assert.Empty(t, p26.Tagged)
	assert.Empty(t, p26.Untagged)

	for _, p := range []int{1, 18, 20, 23} {
		assert.Equal(t, []int{2}, d.Port(p).Tagged, "port %d", p)
		assert.Equal(t, []int{1}, d.Port(p).Untagged, "port %d", p)
	}
}

func TestLoadNeighbors(t *testing.T) {
	d := load(t, profile.Options{Probe: true, ProbeBlacklist: []int{20, 55}}).Device

	_, ok := d.Neighbors[5]
	assert.False(t, ok, "empty network address is skipped")
	_, ok = d.Neighbors[7]
	assert.False(t, ok, "local chassis is skipped")
	require.Len(t, d.Neighbors, 3)

	up := d.Neighbors[24]
	require.NotNil(t, up)
	assert.Equal(t, "00:1e:c1:dd:00:00", up.RemoteMAC, "first timemark wins")
	assert.Equal(t, "26", up.RemotePort)
	assert.Equal(t, "sw-osl-02", up.RemoteSysName)
	assert.Equal(t, "GigabitEthernet1/0/24 Interface", up.LocalPortDesc)
	assert.Equal(t, 40, up.CapEnabled)
	assert.Equal(t, 4, up.ChassisSubtype)
	assert.Equal(t, 5, up.PortSubtype)

	phone := d.Neighbors[6]
	require.NotNil(t, phone)
	assert.Equal(t, "00:15:65:aa:bb:02", phone.RemoteMAC)
	assert.Equal(t, "3", phone.RemotePort, "last mac byte plus one")
	assert.Equal(t, 36, phone.CapEnabled)

	ap := d.Neighbors[8]
	require.NotNil(t, ap)
	assert.Equal(t, "ap-osl-01", ap.RemoteSysName)

	assert.Equal(t, []int{24}, d.UplinkPorts())
	for p := range d.Uplinks {
		assert.Contains(t, d.Neighbors, p)
	}
}

func TestLoadWithoutProbe(t *testing.T) {
	d := load(t, profile.Options{}).Device
	assert.Empty(t, d.Uplinks)
	assert.Len(t, d.MacTable, 4, "nothing is transit without uplinks")
}

func TestLoadMacs(t *testing.T) {
	d := load(t, profile.Options{Probe: true, ProbeBlacklist: []int{20, 55}}).Device
	assert.Equal(t, []device.MacEntry{
		{Port: 5, MAC: "00:11:22:33:44:04", VLAN: 1},
		{Port: 3, MAC: "00:11:22:33:44:01", VLAN: 2},
		{Port: 19, MAC: "00:11:22:33:44:01", VLAN: 20},
	}, d.MacTable)
	assert.Equal(t, []device.MacEntry{{Port: 0, MAC: "00:11:22:33:44:03", VLAN: 2}}, d.FilteredMacs)
}

func TestLoadBasePortCache(t *testing.T) {
	c := omap.NewCache(0)
	load(t, profile.Options{BasePorts: c, BasePortsByVariant: true})
	open := func(host string, community string) (swpoll.Session, error) {
		return replay.Open("testdata/4500g.walk")
	}
	l, err := profile.DefaultRegistry().Factory(open, "10.20.0.3", "public", profile.Options{BasePorts: c, BasePortsByVariant: true})
	require.NoError(t, err)
	require.NoError(t, l.Load())
	assert.Len(t, l.Device.MacTable, 4)
}

func TestLoadIPMacAndL3(t *testing.T) {
	l := load(t, profile.Options{Probe: true, ProbeBlacklist: []int{20, 55}})
	require.NoError(t, l.GetIPMac())
	assert.Equal(t, map[string]string{
		"00:11:22:33:44:01": "10.20.0.11",
		"00:11:22:33:44:04": "10.20.0.12",
	}, l.Device.IPByMac)

	require.NoError(t, l.GetIntVlan())
	assert.Equal(t, map[int]device.L3Interface{
		1: {IP: "10.20.0.1", Mask: "255.255.255.0", AdminState: "1"},
	}, l.Device.L3Interfaces)

	d := l.Device
	profile.Enrich(d, d)
	d.CountMacs()
	assert.Equal(t, "10.20.0.12", d.MacTable[0].IP)
	assert.Equal(t, "10.20.0.11", d.MacTable[1].IP)
	assert.Equal(t, 1, d.Port(3).MacCount)
	assert.Equal(t, 0, d.Port(24).MacCount)
}

func TestLoadDecodeError(t *testing.T) {
	open := func(host string, community string) (swpoll.Session, error) {
		s, err := replay.Open("testdata/4500g.walk")
		if err != nil {
			return nil, err
		}
		_, err = s.Set(".1.3.6.1.2.1.2.2.1.4.3", "jumbo", 's')
		return s, err
	}
	l, err := profile.DefaultRegistry().Factory(open, "10.20.0.2", "public", profile.Options{})
	require.NoError(t, err)
	err = l.Load()
	var de *swpoll.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ".1.3.6.1.2.1.2.2.1.4.3", de.OID)
}

// fixture opens the 4500g dump with some values replaced.
func fixture(sets ...[3]string) profile.Opener {
	return func(host string, community string) (swpoll.Session, error) {
		s, err := replay.Open("testdata/4500g.walk")
		if err != nil {
			return nil, err
		}
		for _, set := range sets {
			if _, err := s.Set(set[0], set[1], set[2][0]); err != nil {
				return nil, err
			}
		}
		return s, nil
	}
}

func TestLoadWideCounters(t *testing.T) {
	open := fixture(
		[3]string{".1.3.6.1.2.1.31.1.1.1.6.24", "18446744073709551000", "c"},
		[3]string{".1.3.6.1.2.1.31.1.1.1.10.24", "18446744073709551615", "c"},
	)
	l, err := profile.DefaultRegistry().Factory(open, "10.20.0.2", "public", profile.Options{})
	require.NoError(t, err)
	require.NoError(t, l.Load())
	p24 := l.Device.Port(24)
	require.NotNil(t, p24)
	assert.Equal(t, uint64(18446744073709551000), p24.InOctets)
	assert.Equal(t, uint64(48000), p24.OutOctets, "unavailable high capacity counter is ignored")
	assert.Equal(t, uint64(0), p24.InDiscards)
}

func TestLoadNeighborAfterSkippedEntry(t *testing.T) {
	const rem = ".1.0.8802.1.1.2.1.4.1.1"
	open := fixture(
		[3]string{rem + ".4.300.7.9", "4", "i"},
		[3]string{rem + ".5.300.7.9", "00 15 65 AA BB 07", "x"},
		[3]string{rem + ".6.300.7.9", "5", "i"},
		[3]string{rem + ".7.300.7.9", "GigabitEthernet1/0/7", "s"},
		[3]string{rem + ".9.300.7.9", "sw-osl-03", "s"},
		[3]string{rem + ".12.300.7.9", "24 00", "x"},
	)
	l, err := profile.DefaultRegistry().Factory(open, "10.20.0.2", "public", profile.Options{})
	require.NoError(t, err)
	require.NoError(t, l.Load())

	n := l.Device.Neighbors[7]
	require.NotNil(t, n, "local chassis entry does not hide a later neighbour")
	assert.Equal(t, "00:15:65:aa:bb:07", n.RemoteMAC)
	assert.Equal(t, "7", n.RemotePort)
	assert.Equal(t, "sw-osl-03", n.RemoteSysName)
	assert.Equal(t, "00:1e:c1:dd:00:00", l.Device.Neighbors[24].RemoteMAC, "first timemark still wins")
}
