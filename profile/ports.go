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

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
)

// ifType values we treat as switch ports: ethernetCsmacd and
// ieee8023adLag.
var portTypes = map[int]bool{6: true, 117: true}

// portColumns are fetched in one request per port, in this order.
var portColumns = []string{
	oidIfDescr,
	oidIfMtu,
	oidIfSpeed,
	oidIfPhysAddress,
	oidIfAdminStatus,
	oidIfOperStatus,
	oidIfLastChange,
	oidIfInOctets,
	oidIfInDiscards,
	oidIfOutOctets,
	oidIfOutDiscards,
	oidDuplex,
	oidIfHCInOctets,
	oidIfHCOutOctets,
	oidIfAlias,
}

// GetPorts reads every ethernet port. GetVlans must have run first.
func (l *Loader) GetPorts() error {
	types, err := l.Session.Walk(oidIfType)
	if err != nil {
		return err
	}
	for _, t := range types {
		typ, err := number(t)
		if err != nil {
			return err
		}
		if !portTypes[typ] {
			continue
		}
		idx, err := lastIndex(t.OID)
		if err != nil {
			return err
		}
		p, err := l.getPort(idx)
		if err != nil {
			return err
		}
		l.Device.Ports = append(l.Device.Ports, p)
	}
	sort.Slice(l.Device.Ports, func(i, j int) bool {
		return l.Device.Ports[i].Number < l.Device.Ports[j].Number
	})
	return nil
}

// getPort reads one port. The first decode error is returned once all
// values are read.
func (l *Loader) getPort(n int) (*device.Port, error) {
	idx := strconv.Itoa(n)
	oids := make([]string, len(portColumns))
	for i, c := range portColumns {
		oids[i] = c + "." + idx
	}
	v, err := l.Session.Get(oids...)
	if err != nil {
		return nil, err
	}
	p := &device.Port{Number: n}
	dec := decoder{}
	name := text(v[0])
	if l.Variant.IfDescr != nil {
		name = l.Variant.IfDescr(name)
	}
	p.Name = name
	p.MTU = dec.int(v[1])
	speed := dec.int(v[2])
	if speed > 0 {
		speed /= 1000000
	}
	p.Speed = speed
	p.PhysAddress = mac(v[3])
	p.Admin = dec.int(v[4])
	p.Oper = dec.int(v[5])
	p.LastChange = dec.ticks(v[6])
	p.InOctets = dec.counter(v[7])
	p.InDiscards = dec.counter(v[8])
	p.OutOctets = dec.counter(v[9])
	p.OutDiscards = dec.counter(v[10])
	p.Duplex = dec.int(v[11])
	p.InOctets = wider(p.InOctets, dec.counter(v[12]))
	p.OutOctets = wider(p.OutOctets, dec.counter(v[13]))
	p.Alias = text(v[14])

	stp, err := l.Session.Get(oidStpPortEnable+"."+idx, oidStpPortState+"."+idx, oidPvid+"."+idx)
	if err != nil {
		return nil, err
	}
	p.STPAdmin = dec.int(stp[0])
	p.STPState = dec.int(stp[1])
	p.PVID = dec.int(stp[2])

	if err := l.getPoE(p, &dec); err != nil {
		return nil, err
	}

	p.VlanType = "0"
	if col := l.Variant.VlanType; col != "" {
		vt, err := l.Session.Get(col + "." + idx)
		if err != nil {
			return nil, err
		}
		if vt[0].Missing() {
			p.VlanType = swpoll.NoSuchValue
		} else {
			p.VlanType = text(vt[0])
		}
	}
	if p.VlanType == "2" {
		p.Tagged, p.Untagged = []int{}, []int{}
	} else {
		p.Tagged, p.Untagged = l.vlansForPort(n)
	}
	if dec.err != nil {
		return nil, dec.err
	}
	return p, nil
}

func (l *Loader) getPoE(p *device.Port, dec *decoder) error {
	v, err := l.Session.Get(l.Variant.PoE.For(p.Number)...)
	if err != nil {
		return err
	}
	admin := v[0]
	if l.Variant.PoEAdmin != nil && !admin.Missing() {
		admin.Value = l.Variant.PoEAdmin(unquote(admin))
	}
	p.PoEAdmin = dec.int(admin)
	if l.Variant.PoEStatus != nil && !v[1].Missing() {
		p.PoEDetection, err = l.Variant.PoEStatus(unquote(v[1]))
		if err != nil {
			return &swpoll.DecodeError{OID: v[1].OID, Value: v[1].Value, Want: "PoE status", Err: err}
		}
	} else {
		p.PoEDetection = dec.int(v[1])
	}
	p.PoEClass = dec.int(v[2])
	p.PoEPower = dec.int(v[3])
	return nil
}

// decoder remembers the first decode error so a run of conversions can
// be checked once.
type decoder struct {
	err error
}

func (d *decoder) int(v swpoll.Variable) int {
	n, err := number(v)
	if err != nil && d.err == nil {
		d.err = err
	}
	return n
}

func (d *decoder) counter(v swpoll.Variable) uint64 {
	n, err := counter(v)
	if err != nil && d.err == nil {
		d.err = err
	}
	return n
}

// wider picks the high capacity counter when it has the larger value.
func wider(low uint64, hc uint64) uint64 {
	if hc == device.NoCounter {
		return low
	}
	if low == device.NoCounter || hc > low {
		return hc
	}
	return low
}

func (d *decoder) ticks(v swpoll.Variable) int64 {
	if v.Missing() {
		return -1
	}
	t, err := swpoll.ParseTicks(v.Value)
	if err != nil {
		if d.err == nil {
			d.err = &swpoll.DecodeError{OID: v.OID, Value: v.Value, Want: "timeticks", Err: err}
		}
		return 0
	}
	return int64(t)
}
