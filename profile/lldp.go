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
	"fmt"
	"strconv"
	"strings"

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
)

// LldpChassisIdSubtype and LldpPortIdSubtype values we decode.
const (
	chassisMAC     = 4
	chassisNetwork = 5
	chassisLocal   = 7
	portMAC        = 3
	portIfName     = 5
)

// remoteColumns are read with a getnext below timemark.localport; some
// D-Link firmware answers get wrong in this table.
var remoteColumns = []string{
	oidLldpRemChassisSub,
	oidLldpRemPortSub,
	oidLldpRemPortID,
	oidLldpRemPortDesc,
	oidLldpRemSysName,
	oidLldpRemCapSupported,
	oidLldpRemCapEnabled,
}

// GetLldpNeighbors reads lldpRemTable and classifies every neighbour.
// A port seen more than once, under a new timemark, keeps the first
// entry that gave a neighbour.
func (l *Loader) GetLldpNeighbors() error {
	chassis, err := l.Session.Walk(oidLldpRemChassisID)
	if err != nil {
		return err
	}
	seen := make(map[int]bool)
	for _, c := range chassis {
		idx := suffix(c.OID, oidLldpRemChassisID)
		if len(idx) < 2 {
			l.log.Debugf("short lldp index %s", c.OID)
			continue
		}
		lport, err := strconv.Atoi(idx[1])
		if err != nil {
			return &swpoll.DecodeError{OID: c.OID, Value: idx[1], Want: "local port", Err: err}
		}
		if seen[lport] {
			l.log.Debugf("lldp: port %d already seen", lport)
			continue
		}
		n, capErr, err := l.neighbor(idx[0], lport, c)
		if err != nil {
			return err
		}
		if n == nil {
			continue
		}
		seen[lport] = true
		l.Device.Neighbors[lport] = n
		uplink, err := l.classify(n)
		if capErr != nil {
			err = capErr
		}
		if err != nil {
			l.log.Logf("%v", &swpoll.ClassifierFallback{Port: lport, Err: err})
			uplink = true
		}
		if uplink {
			l.Device.Uplinks[lport] = true
		}
	}
	return nil
}

func (l *Loader) classify(n *device.Neighbor) (bool, error) {
	if l.Variant.Classify != nil {
		return l.Variant.Classify(l.Classifier, n)
	}
	return l.Classifier.IsUplink(n)
}

// neighbor builds the record for one lldpRemTable row, or nil if the
// neighbour is one we can't name. An unreadable lldpRemSysCapEnabled is
// returned as capErr next to the record.
func (l *Loader) neighbor(timemark string, lport int, chassis swpoll.Variable) (n *device.Neighbor, capErr error, err error) {
	port := strconv.Itoa(lport)
	local, err := l.Session.Get(oidLldpLocPortDesc + "." + port)
	if err != nil {
		return nil, nil, err
	}
	oids := make([]string, len(remoteColumns))
	for i, col := range remoteColumns {
		oids[i] = col + "." + timemark + "." + port
	}
	res, err := l.Session.GetNext(oids...)
	if err != nil {
		return nil, nil, err
	}
	for i := range res {
		if !strings.HasPrefix(res[i].OID, oids[i]+".") {
			res[i] = swpoll.NoSuch(oids[i])
		}
	}
	n = &device.Neighbor{
		LocalPort:      lport,
		LocalPortDesc:  text(local[0]),
		RemotePortDesc: text(res[3]),
		RemoteSysName:  text(res[4]),
	}
	if n.ChassisSubtype, err = number(res[0]); err != nil {
		return nil, nil, err
	}
	if n.PortSubtype, err = number(res[1]); err != nil {
		return nil, nil, err
	}

	switch n.ChassisSubtype {
	case chassisMAC:
		n.RemoteMAC = mac(chassis)
	case chassisNetwork:
		b := octets(chassis)
		if len(b) == 0 {
			l.log.Debugf("lldp: port %d has an empty network address", lport)
			return nil, nil, nil
		}
		if len(b) < 4 {
			return nil, nil, &swpoll.DecodeError{OID: chassis.OID, Value: chassis.Value, Want: "network address"}
		}
		b = b[len(b)-4:]
		n.RemoteMAC = fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
	case chassisLocal:
		return nil, nil, nil
	default:
		n.RemoteMAC = text(chassis)
	}

	n.RemotePort = remotePort(n.PortSubtype, res[2])

	// Unreadable capabilities are left at -1.
	if n.CapSupported, err = capability(res[5]); err != nil {
		l.log.Debugf("lldp: port %d: %v", lport, err)
		n.CapSupported = -1
	}
	if n.CapEnabled, capErr = capability(res[6]); capErr != nil {
		n.CapEnabled = -1
	}
	return n, capErr, nil
}

// remotePort turns a port id into a port number where the subtype
// allows. Names like GigabitEthernet1/0/24 become 24, or 224 for the
// second unit of a stack. Mac ports are the last byte plus one.
func remotePort(subtype int, v swpoll.Variable) string {
	raw := text(v)
	switch subtype {
	case portIfName:
		parts := strings.Split(raw, "/")
		if len(parts) < 2 || parts[0] == "" {
			return raw
		}
		first, last := parts[0], parts[len(parts)-1]
		if strings.HasSuffix(first, "1") {
			return last
		}
		if len(last) < 2 {
			last = "0" + last
		}
		return first[len(first)-1:] + last
	case portMAC:
		b := octets(v)
		if len(b) == 0 {
			return raw
		}
		return strconv.Itoa(int(b[len(b)-1]) + 1)
	}
	return raw
}
