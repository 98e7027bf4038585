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
	"regexp"
	"strconv"
	"strings"

	"github.com/telenornms/swpoll/device"
	"github.com/telenornms/swpoll/portlist"
)

// words splits sysDescr on single spaces, the way the match rules were
// written. Missing words are blank.
func word(descr string, n int) string {
	w := strings.Split(descr, " ")
	if n < len(w) {
		return w[n]
	}
	return ""
}

func line(descr string, n int) string {
	l := strings.Split(descr, "\n")
	if n < len(l) {
		return l[n]
	}
	return ""
}

// model is the part of a word before the first dash, e.g. J9850A for
// J9850A-Switch.
func model(w string) string {
	m, _, _ := strings.Cut(w, "-")
	return m
}

// Generic is the 3Com/HPN flavoured base everything else derives from.
func Generic() *Variant {
	return &Variant{
		Name:       "Generic",
		Match:      func(string) bool { return true },
		Mask:       portlist.BigEndian,
		BoardIndex: "2",
		Vlans: VlanOIDs{
			List:     oidA3comVlanIndex,
			Tagged:   oidA3comVlanPorts,
			Untagged: oidA3comVlanUntagged,
		},
		PoE: PoEOIDs{
			Admin:     oidPethAdmin,
			Detection: oidPethDetection,
			Class:     oidPethClass,
			Power:     oidA3comPsePortPower,
			Group:     "1",
		},
		VlanType: oidA3comIfVlanType,
		IntVlan: IntVlanOIDs{
			Exists:  oidA3comVlanIfStatus,
			Address: oidA3comVlanIPAddress,
			Mask:    oidA3comVlanIPMask,
			Admin:   oidA3comVlanIPAdmin,
		},
	}
}

func threeCom(base *Variant) []*Variant {
	tc := base.derive("3Com", func(d string) bool {
		return strings.ToLower(word(d, 0)) == "3com"
	}, nil)
	tc4500 := tc.derive("3Com-4500G", func(d string) bool {
		return strings.ToLower(word(d, 1)) == "switch" && word(d, 2) == "4500G"
	}, nil)
	tc7900 := tc.derive("3Com-7900", func(d string) bool {
		return strings.HasPrefix(word(d, 1), "S790")
	}, nil)
	return []*Variant{tc, tc4500, tc7900}
}

var dlinkIfDescr = regexp.MustCompile("^D-Link .* (Port [^ ]+) .*")

func dlink(base *Variant) []*Variant {
	dl := base.derive("D-Link", func(d string) bool {
		return strings.HasPrefix(word(d, 0), "DGS")
	}, func(v *Variant) {
		v.Mask = portlist.LittleEndian
		v.BoardIndex = "1"
		v.Vlans = VlanOIDs{List: oidQVlanFdbID, Tagged: oidQStaticEgress, Untagged: oidQStaticUntagged}
		v.PoE = PoEOIDs{
			Admin:     oidDlinkPoECtrlState,
			Detection: oidDlinkPoELedStatus,
			Class:     oidDlinkPoEClass,
			Power:     oidDlinkPoEPower,
		}
		// swPoEPortCtrlState is other(1), enable(2), disable(3)
		v.PoEAdmin = func(raw string) string {
			switch raw {
			case "1":
				return "-1"
			case "2":
				return "1"
			case "3":
				return "2"
			}
			return raw
		}
		v.VlanType = ""
		v.IntVlan = IntVlanOIDs{
			Exists:  oidDlinkL3IfName,
			Address: oidDlinkL3IPAddr,
			Mask:    oidDlinkL3IPMask,
			Admin:   oidDlinkL3Admin,
		}
		v.LoadL3 = dlinkIntVlan
		v.IfDescr = func(descr string) string {
			if m := dlinkIfDescr.FindStringSubmatch(descr); m != nil {
				return m[1]
			}
			return descr
		}
	})
	return []*Variant{dl}
}

func extreme(base *Variant) []*Variant {
	ex := base.derive("Extreme", func(d string) bool {
		return word(d, 0) == "ExtremeXOS"
	}, func(v *Variant) {
		v.BoardIndex = "3"
		v.PoE.Power = oidExtremePoEPower
		v.PoE.Group = "1"
	})
	x440 := ex.derive("Extreme-X440", func(d string) bool {
		return strings.TrimPrefix(model(word(d, 1)), "(") == "X440"
	}, func(v *Variant) {
		v.Vlans = VlanOIDs{List: oidExtremeVlanID, Tagged: oidExtremeVlanTagged, Untagged: oidExtremeVlanUntagged}
	})
	return []*Variant{ex, x440}
}

func hh3c(base *Variant) []*Variant {
	hp := base.derive("HH3C", func(d string) bool {
		return strings.HasPrefix(word(d, 0), "HP")
	}, func(v *Variant) {
		v.Vlans = VlanOIDs{List: oidHH3CVlanIndex, Tagged: oidHH3CVlanPorts, Untagged: oidHH3CVlanUntagged}
		v.PoE.Power = oidHH3CPsePortPower
		v.PoE.Group = "4"
		v.VlanType = oidHH3CIfVlanType
		v.IntVlan = IntVlanOIDs{
			Exists:  oidHH3CVlanIfStatus,
			Address: oidHH3CVlanIPAddress,
			Mask:    oidHH3CVlanIPMask,
			Admin:   oidHH3CVlanIPAdmin,
		}
	})
	// ProCurve in a Comware costume, Q-BRIDGE for vlans and every
	// LLDP neighbour is treated as an uplink.
	j9850 := hp.derive("HH3C-J9850A", func(d string) bool {
		return model(word(d, 1)) == "J9850A"
	}, func(v *Variant) {
		v.Mask = portlist.LittleEndian
		v.BoardIndex = "1"
		v.PoE.Group = "1"
		v.Vlans = VlanOIDs{List: oidQVlanFdbID + ".0", Tagged: oidQStaticEgress, Untagged: oidQStaticUntagged}
		v.Classify = func(*Classifier, *device.Neighbor) (bool, error) {
			return true, nil
		}
	})
	v1910 := hp.derive("HH3C-V1910", func(d string) bool {
		return model(word(d, 1)) == "V1910"
	}, func(v *Variant) {
		v.BoardIndex = "1"
		v.PoE.Group = "1"
	})
	return []*Variant{hp, j9850, v1910}
}

func huawei(base *Variant) []*Variant {
	hw := base.derive("Huawei", func(d string) bool {
		return strings.HasPrefix(line(d, 1), "Huawei")
	}, func(v *Variant) {
		v.BoardIndex = "1"
		v.Vlans = VlanOIDs{List: oidHwL2VlanDescr, Tagged: oidQStaticEgress, Untagged: oidQStaticUntagged}
		v.PoE = PoEOIDs{
			Admin:     oidHwPoePortEnable,
			Detection: oidHwPoePortStatus,
			Class:     oidHwPoePortPower,
			Power:     oidHwPoePortPower,
		}
		v.VlanType = oidHwL2IfPortType
		v.PoEStatus = func(raw string) (int, error) {
			if raw == "on" {
				return 1, nil
			}
			return 0, nil
		}
		v.General = func(d *device.Device) {
			d.Model = word(line(d.Description, 0), 0)
		}
	})
	s5700 := hw.derive("Huawei-S5700", func(d string) bool {
		return strings.HasPrefix(line(d, 0), "S57")
	}, func(v *Variant) {
		v.BoardIndex = "67108867"
	})
	return []*Variant{hw, s5700}
}

// dlinkIntVlan reads swL3IpCtrlTable. Interfaces are names, the
// convention being that they're named after the vlan, except the
// default interface "System" which is vlan 1.
func dlinkIntVlan(l *Loader) error {
	iv := l.Variant.IntVlan
	vars, err := l.Session.Walk(iv.Exists)
	if err != nil {
		return err
	}
	for _, v := range vars {
		idx := strings.TrimPrefix(v.OID, iv.Exists+".")
		name := text(v)
		vlan := 1
		if name != "System" {
			vlan, err = strconv.Atoi(name)
			if err != nil {
				l.log.Debugf("skipping l3 interface %q", name)
				continue
			}
		}
		vals, err := l.Session.Get(iv.Address+"."+idx, iv.Mask+"."+idx, iv.Admin+"."+idx)
		if err != nil {
			return err
		}
		if text(vals[0]) == "0.0.0.0" || text(vals[2]) == "2" {
			continue
		}
		l.Device.L3Interfaces[vlan] = device.L3Interface{IP: text(vals[0]), Mask: text(vals[1]), AdminState: text(vals[2])}
	}
	return nil
}
