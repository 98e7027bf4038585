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

package profile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/telenornms/swpoll/portlist"
)

// allVlans is what a trunk carrying (nearly) everything reports.
const (
	allVlans     = 4095
	allVlansFrom = 4090
)

// GetVlans reads the vlan list and the tagged and untagged bitfields of
// every vlan. Vlans are kept in the order a string sort of their ids
// gives.
func (l *Loader) GetVlans() error {
	vo := l.Variant.Vlans
	vars, err := l.Session.Walk(vo.List)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(vars))
	seen := make(map[string]bool)
	for _, v := range vars {
		id := v.OID[strings.LastIndexByte(v.OID, '.')+1:]
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	d := l.Device
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			l.log.Debugf("ignoring vlan index %q", id)
			continue
		}
		d.VlanIDs = append(d.VlanIDs, n)
		t, err := l.Session.Get(vo.Tagged + "." + id)
		if err != nil {
			return err
		}
		if !t[0].Missing() {
			d.TaggedByVlan[n] = portlist.FromBytes(octets(t[0]))
		}
		u, err := l.Session.Get(vo.Untagged + "." + id)
		if err != nil {
			return err
		}
		if !u[0].Missing() {
			d.UntaggedByVlan[n] = portlist.FromBytes(octets(u[0]))
		}
	}
	return nil
}

// vlansForPort decodes membership of a port. A port is untagged in a
// vlan if its untagged bit is set, tagged if only the tagged bit is.
func (l *Loader) vlansForPort(port int) (tagged []int, untagged []int) {
	d := l.Device
	mask := l.Variant.Mask
	tagged = []int{}
	untagged = []int{}
	for _, id := range d.VlanIDs {
		tg, ok := d.TaggedByVlan[id]
		if !ok {
			continue
		}
		ug, ok := d.UntaggedByVlan[id]
		if !ok {
			continue
		}
		t := mask.Test(tg, port)
		u := mask.Test(ug, port)
		if u > 0 {
			untagged = append(untagged, id)
		} else if t > 0 {
			tagged = append(tagged, id)
		}
	}
	if len(tagged) > allVlansFrom {
		tagged = []int{allVlans}
	}
	return tagged, untagged
}
