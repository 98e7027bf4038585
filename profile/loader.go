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
	"strings"
	"time"

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
	"github.com/telenornms/swpoll/omap"
)

// Options tune a Loader.
type Options struct {
	// Probe enables the LLDP-MED uplink probe, skipping neighbours whose
	// remote PVID is in ProbeBlacklist.
	Probe          bool
	ProbeBlacklist []int

	// BasePorts caches bridge port maps. With a nil cache the map is
	// walked for every device. ByVariant shares one map between all
	// devices of a variant, otherwise maps are per host.
	BasePorts          *omap.Cache
	BasePortsByVariant bool
}

// Loader fills in a device.Device from a session, as described by a
// Variant.
type Loader struct {
	Variant    *Variant
	Session    swpoll.Session
	Device     *device.Device
	Classifier *Classifier
	opts       Options
	log        swpoll.Target
}

func NewLoader(v *Variant, s swpoll.Session, opts Options) *Loader {
	l := &Loader{
		Variant: v,
		Session: s,
		Device:  device.New(s.Target()),
		opts:    opts,
		log:     swpoll.Target(s.Target()),
	}
	l.Device.Variant = v.Name
	l.Classifier = &Classifier{}
	if opts.Probe {
		l.Classifier.Probe = MedProbe(s, opts.ProbeBlacklist)
	}
	return l
}

// Load runs the fixed load sequence. The first failing step aborts and
// the device must be thrown away.
func (l *Loader) Load() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"general", l.GetGeneral},
		{"vlans", l.GetVlans},
		{"ports", l.GetPorts},
		{"lldp", l.GetLldpNeighbors},
		{"macs", l.GetMacList},
	}
	for _, s := range steps {
		now := time.Now()
		if err := s.fn(); err != nil {
			return fmt.Errorf("loading %s: %w", s.name, err)
		}
		l.log.Debugf("%s loaded in %s", s.name, time.Since(now).Round(time.Millisecond))
	}
	return nil
}

// Close finalizes the session.
func (l *Loader) Close() {
	l.Session.Finalize()
}

// GetGeneral reads identity, uptime, bridge address and STP root cost.
func (l *Loader) GetGeneral() error {
	d := l.Device
	vars, err := l.Session.Get(oidSysName, oidSysDescr, oidSysUpTime, oidBridgeAddress, oidStpRootCost)
	if err != nil {
		return err
	}
	d.Name = text(vars[0])
	d.Description = text(vars[1])
	d.Uptime = text(vars[2])
	d.MAC = mac(vars[3])
	d.STP, err = number(vars[4])
	if err != nil {
		return err
	}
	d.STPRoot = d.STP == 0
	d.IP = d.Host
	if d.Name != "" {
		parts := strings.Split(strings.ToUpper(d.Name), "-")
		d.Alias = parts[0] + "-" + parts[len(parts)-1]
	}

	idx := l.Variant.BoardIndex
	board, err := l.Session.Get(
		oidEntPhysical+".7."+idx,
		oidEntPhysical+".10."+idx,
		oidEntPhysical+".11."+idx,
		oidEntPhysical+".12."+idx,
		oidEntPhysical+".13."+idx)
	if err != nil {
		return err
	}
	d.Physical = text(board[0])
	d.SoftwareVersion = text(board[1])
	d.Serial = text(board[2])
	d.Vendor, _, _ = strings.Cut(text(board[3]), " ")
	d.Model = text(board[4])
	if l.Variant.General != nil {
		l.Variant.General(d)
	}
	return nil
}

func (l *Loader) basePorts() (*omap.OMap, error) {
	c := l.opts.BasePorts
	if c == nil {
		return omap.BuildOMap(l.Session, oidBasePortIfIndex)
	}
	key := l.Device.Host
	if l.opts.BasePortsByVariant {
		key = l.Variant.Name
	}
	return c.Get(key, l.Session, oidBasePortIfIndex)
}
