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
	"strconv"
	"strings"

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
)

// GetMacList reads the forwarding database. Macs learnt on uplinks are
// transit and dropped, macs on bridge port 0 are kept apart as filtered.
// GetLldpNeighbors must have run first.
func (l *Loader) GetMacList() error {
	bp, err := l.basePorts()
	if err != nil {
		return err
	}
	vars, err := l.Session.Walk(oidTpFdbPort)
	if err != nil {
		return err
	}
	d := l.Device
	for _, v := range vars {
		idx := suffix(v.OID, oidTpFdbPort)
		if len(idx) != 7 {
			l.log.Debugf("odd fdb index %s", v.OID)
			continue
		}
		vlan, err := strconv.Atoi(idx[0])
		if err != nil {
			return &swpoll.DecodeError{OID: v.OID, Value: idx[0], Want: "vlan", Err: err}
		}
		b := make([]byte, 6)
		for i := range b {
			o, err := strconv.ParseUint(idx[i+1], 10, 8)
			if err != nil {
				return &swpoll.DecodeError{OID: v.OID, Value: idx[i+1], Want: "mac octet", Err: err}
			}
			b[i] = byte(o)
		}
		bport, err := number(v)
		if err != nil {
			return err
		}
		port := bp.Lookup(bport)
		e := device.MacEntry{Port: port, MAC: formatMAC(b), VLAN: vlan}
		if port == 0 {
			d.FilteredMacs = append(d.FilteredMacs, e)
			continue
		}
		if d.Uplinks[port] {
			continue
		}
		d.AddMac(e)
	}
	return nil
}

// GetIPMac reads the ARP cache into IPByMac. Only worth doing on the
// router, the STP root.
func (l *Loader) GetIPMac() error {
	vars, err := l.Session.Walk(oidIPNetToMediaPhys)
	if err != nil {
		return err
	}
	for _, v := range vars {
		idx := suffix(v.OID, oidIPNetToMediaPhys)
		if len(idx) < 5 {
			continue
		}
		ip := strings.Join(idx[len(idx)-4:], ".")
		m := mac(v)
		if m == "" {
			continue
		}
		l.Device.IPByMac[m] = ip
	}
	return nil
}

// GetIntVlan reads the routed vlan interfaces, using the variant's own
// loader if it has one.
func (l *Loader) GetIntVlan() error {
	if l.Variant.LoadL3 != nil {
		return l.Variant.LoadL3(l)
	}
	iv := l.Variant.IntVlan
	vars, err := l.Session.Walk(iv.Exists)
	if err != nil {
		return err
	}
	for _, v := range vars {
		// 1 true, 2 false
		if text(v) == "2" {
			continue
		}
		id := v.OID[strings.LastIndexByte(v.OID, '.')+1:]
		vlan, err := strconv.Atoi(id)
		if err != nil {
			return &swpoll.DecodeError{OID: v.OID, Value: id, Want: "vlan", Err: err}
		}
		vals, err := l.Session.Get(iv.Address+"."+id, iv.Mask+"."+id, iv.Admin+"."+id)
		if err != nil {
			return err
		}
		if vals[0].Missing() || text(vals[0]) == "0.0.0.0" {
			continue
		}
		l.Device.L3Interfaces[vlan] = device.L3Interface{IP: text(vals[0]), Mask: text(vals[1]), AdminState: text(vals[2])}
	}
	return nil
}

// Enrich fills in IPs on d's mac table from root's ARP cache.
func Enrich(d *device.Device, root *device.Device) {
	if root == nil {
		return
	}
	for i := range d.MacTable {
		if ip, ok := root.IPByMac[d.MacTable[i].MAC]; ok {
			d.MacTable[i].IP = ip
		}
	}
}

