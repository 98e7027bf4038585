/*
 * swpoll switch profiles
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
Package profile knows how to read a switch. Vendors differ in which tables
hold vlan membership and PoE state, which end of a portlist byte is port 1,
and a handful of value encodings. Each of those differences is a field or a
hook on a Variant, and the variants form a tree (Generic at the root) that
the Registry walks to pick the most specific one for a sysDescr.

A Loader binds a variant to a session and fills in a device.Device.
*/
package profile

import (
	"strconv"

	"github.com/telenornms/swpoll/device"
	"github.com/telenornms/swpoll/portlist"
)

// VlanOIDs are the vlan list and the tagged and untagged portlist
// columns, all indexed by vlan id.
type VlanOIDs struct {
	List     string
	Tagged   string
	Untagged string
}

// PoEOIDs are columns indexed by [group.]port.
type PoEOIDs struct {
	Admin     string
	Detection string
	Class     string
	Power     string
	Group     string
}

// For returns admin, detection, class and power oids for a port.
func (p PoEOIDs) For(port int) []string {
	idx := strconv.Itoa(port)
	if p.Group != "" {
		idx = p.Group + "." + idx
	}
	return []string{p.Admin + "." + idx, p.Detection + "." + idx, p.Class + "." + idx, p.Power + "." + idx}
}

// IntVlanOIDs describe routed vlan interfaces, indexed by vlan id.
type IntVlanOIDs struct {
	Exists  string
	Address string
	Mask    string
	Admin   string
}

// Variant is the configuration of one switch family.
type Variant struct {
	Name   string
	Parent string
	Match  func(descr string) bool

	Mask       portlist.Codec
	BoardIndex string // entPhysicalTable index of the chassis
	Vlans      VlanOIDs
	PoE        PoEOIDs
	VlanType   string // per-port vlan type column; blank if the family has none
	IntVlan    IntVlanOIDs

	PoEAdmin  func(raw string) string       // remaps the raw admin value
	PoEStatus func(raw string) (int, error) // decodes the detection value
	IfDescr   func(descr string) string     // port name from ifDescr
	General   func(d *device.Device)        // touches up identity
	LoadL3    func(l *Loader) error         // replaces the generic GetIntVlan
	Classify  func(c *Classifier, n *device.Neighbor) (bool, error)
}

// derive copies v into a child variant, modified by mod.
func (v *Variant) derive(name string, match func(string) bool, mod func(*Variant)) *Variant {
	c := *v
	c.Name = name
	c.Parent = v.Name
	c.Match = match
	if mod != nil {
		mod(&c)
	}
	return &c
}

func (v *Variant) String() string {
	return v.Name
}
