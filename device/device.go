/*
 * swpoll device model
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

/*
Package device is the vendor neutral result of polling a switch. A Device
is built by profile.Loader during one poll cycle and treated as read-only
once the poller has published it.

Numeric fields read from the switch are -1 when the switch did not have
the attribute, except the octet and discard counters, which are
NoCounter.
*/
package device

import (
	"sort"
)

// NoCounter marks a counter the switch did not have. Some firmware
// reports the same value for counters it doesn't keep.
const NoCounter = ^uint64(0)

type Device struct {
	Host    string
	Variant string

	Name            string
	Alias           string
	Description     string
	MAC             string
	IP              string
	Model           string
	Vendor          string
	Serial          string
	SoftwareVersion string
	Physical        string
	Uptime          string

	STP     int // root path cost
	STPRoot bool

	Ports          []*Port
	VlanIDs        []int
	TaggedByVlan   map[int][]int
	UntaggedByVlan map[int][]int

	Neighbors map[int]*Neighbor
	Uplinks   map[int]bool

	MacTable     []MacEntry
	FilteredMacs []MacEntry

	IPByMac      map[string]string
	L3Interfaces map[int]L3Interface

	macIndex map[macKey]int // position in MacTable
}

type macKey struct {
	mac  string
	vlan int
}

type Port struct {
	Number      int
	Name        string
	Alias       string
	MTU         int
	PhysAddress string
	Speed       int // Mbps
	Duplex      int
	Admin       int
	Oper        int
	LastChange  int64 // hundredths since boot
	InDiscards  uint64
	OutDiscards uint64
	InOctets    uint64
	OutOctets   uint64

	STPAdmin int
	STPState int
	PVID     int
	VlanType string
	Tagged   []int
	Untagged []int

	PoEAdmin     int
	PoEDetection int
	PoEClass     int
	PoEPower     int // mW

	MacCount int
}

// Neighbor is one LLDP neighbour, keyed by the local port it was seen
// on.
type Neighbor struct {
	LocalPort      int
	LocalPortDesc  string
	ChassisSubtype int
	PortSubtype    int
	RemoteMAC      string
	RemotePort     string
	RemotePortDesc string
	RemoteSysName  string
	CapSupported   int
	CapEnabled     int
}

type MacEntry struct {
	Port int
	MAC  string
	VLAN int
	IP   string
}

type L3Interface struct {
	IP         string
	Mask       string
	AdminState string
}

// New returns an empty device with every map allocated.
func New(host string) *Device {
	return &Device{
		Host:           host,
		TaggedByVlan:   make(map[int][]int),
		UntaggedByVlan: make(map[int][]int),
		Neighbors:      make(map[int]*Neighbor),
		Uplinks:        make(map[int]bool),
		IPByMac:        make(map[string]string),
		L3Interfaces:   make(map[int]L3Interface),
	}
}

// Port returns port n or nil.
func (d *Device) Port(n int) *Port {
	i := sort.Search(len(d.Ports), func(i int) bool { return d.Ports[i].Number >= n })
	if i < len(d.Ports) && d.Ports[i].Number == n {
		return d.Ports[i]
	}
	return nil
}

// UplinkPorts returns the uplinks sorted.
func (d *Device) UplinkPorts() []int {
	ret := make([]int, 0, len(d.Uplinks))
	for p := range d.Uplinks {
		ret = append(ret, p)
	}
	sort.Ints(ret)
	return ret
}

// AddMac appends an entry, replacing the port of an earlier entry with
// the same mac and vlan.
func (d *Device) AddMac(e MacEntry) {
	if len(d.macIndex) != len(d.MacTable) {
		d.reindex()
	}
	k := macKey{e.MAC, e.VLAN}
	if i, ok := d.macIndex[k]; ok {
		d.MacTable[i].Port = e.Port
		return
	}
	d.macIndex[k] = len(d.MacTable)
	d.MacTable = append(d.MacTable, e)
}

// reindex rebuilds macIndex after MacTable was assigned directly.
func (d *Device) reindex() {
	d.macIndex = make(map[macKey]int, len(d.MacTable))
	for i, e := range d.MacTable {
		k := macKey{e.MAC, e.VLAN}
		if _, ok := d.macIndex[k]; !ok {
			d.macIndex[k] = i
		}
	}
}

// CountMacs sets MacCount on every port from the mac table.
func (d *Device) CountMacs() {
	counts := make(map[int]int)
	for _, e := range d.MacTable {
		counts[e.Port]++
	}
	for _, p := range d.Ports {
		p.MacCount = counts[p.Number]
	}
}
