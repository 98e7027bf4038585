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

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
)

// lldpRemSysCapEnabled values of phones and other things that never
// forward frames.
const (
	capNone        = 0
	capBridgePhone = 36
)

// Probe asks the switch for more about the neighbour on a local port.
type Probe func(localPort int) (bool, error)

// Classifier guesses whether an LLDP neighbour is another switch. It's a
// heuristic tuned for phones and access points, and will be wrong
// sometimes.
type Classifier struct {
	Probe Probe
}

// IsUplink classifies n. Without a Probe, anything that survives the
// capability and subtype checks is not an uplink.
func (c *Classifier) IsUplink(n *device.Neighbor) (bool, error) {
	// The bit test keeps the long standing behaviour and never matches.
	if n.CapEnabled == capNone || n.CapEnabled == capBridgePhone || n.CapEnabled&4 == 1 {
		return false, nil
	}
	// Externally powered phones announce a mac port and a network
	// address chassis.
	if n.PortSubtype == 3 && n.ChassisSubtype == 5 {
		return false, nil
	}
	if c.Probe == nil {
		return false, nil
	}
	return c.Probe(n.LocalPort)
}

// MedProbe reads LLDP-MED power class and PoE state and the remote PVID
// of the neighbour. Neighbours on a blacklisted PVID are access points
// or cameras. Otherwise a neighbour without PoE, or drawing class 1, is
// a switch.
func MedProbe(s swpoll.Session, blacklist []int) Probe {
	return func(port int) (bool, error) {
		idx := "." + strconv.Itoa(port)
		vars, err := s.Get(oidLldpRemPowerClass+idx, oidLldpRemPoEEnabled+idx, oidLldpRemPortVlan+idx)
		if err != nil {
			return false, err
		}
		class, err := number(vars[0])
		if err != nil {
			return false, err
		}
		poe, err := number(vars[1])
		if err != nil {
			return false, err
		}
		pvid, err := number(vars[2])
		if err != nil {
			return false, err
		}
		for _, b := range blacklist {
			if pvid == b {
				return false, nil
			}
		}
		return poe == 2 || class == 1, nil
	}
}
