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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/profile"
	"github.com/telenornms/swpoll/replay"
	"github.com/telenornms/swpoll/smierte"
)

func TestResolve(t *testing.T) {
	r := profile.DefaultRegistry()
	cases := []struct {
		descr string
		want  string
	}{
		{"HPE V1910-24G-PoE Switch Software Version 5.20", "HH3C-V1910"},
		{"HP J9850A Switch 5406Rzl2, revision KB.16.02", "HH3C-J9850A"},
		{"HP Comware Platform Software", "HH3C"},
		{"S5720-28X-PWR-SI-AC\nHuawei Versatile Routing Platform Software", "Huawei-S5700"},
		{"S6720-30C-EI-24S-AC\nHuawei Versatile Routing Platform Software", "Huawei"},
		{"DGS-3420-28PC Gigabit Ethernet Switch", "D-Link"},
		{"3Com Switch 4500G PWR 24-Port Software Version 3Com OS V5.20", "3Com-4500G"},
		{"3Com S7906E", "3Com-7900"},
		{"3Com Baseline Switch 2928-SFP Plus", "3Com"},
		{"ExtremeXOS (X440-24p-10G) version 15.3.1.4", "Extreme-X440"},
		{"ExtremeXOS (X460-48t) version 15.3.1.4", "Extreme"},
		{"Cisco IOS Software, C2960 Software", "Generic"},
		{"", "Generic"},
	}
	for _, c := range cases {
		v := r.Resolve(c.descr)
		require.NotNil(t, v)
		assert.Equal(t, c.want, v.Name, "descr %q", c.descr)
	}
}

func TestRegister(t *testing.T) {
	r := profile.NewRegistry(profile.Generic())
	err := r.Register(&profile.Variant{Name: "Generic", Parent: "Generic", Match: func(string) bool { return true }})
	assert.Error(t, err, "duplicate name")
	err = r.Register(&profile.Variant{Name: "X", Parent: "nope", Match: func(string) bool { return true }})
	assert.Error(t, err, "unknown parent")
	err = r.Register(&profile.Variant{Name: "X", Parent: "Generic"})
	assert.Error(t, err, "no predicate")
	err = r.Register(&profile.Variant{Name: "X", Parent: "Generic", Match: func(d string) bool { return d == "x" }})
	require.NoError(t, err)
	assert.Equal(t, "X", r.Resolve("x").Name)
	assert.Equal(t, "Generic", r.Resolve("y").Name)
	assert.NotNil(t, r.Lookup("X"))
	assert.Nil(t, r.Lookup("Y"))
}

func TestVariantsInherit(t *testing.T) {
	r := profile.DefaultRegistry()
	vs := r.Variants()
	require.Equal(t, "Generic", vs[0].Name)
	assert.Len(t, vs, 12)
	tc := r.Lookup("3Com-4500G")
	base := r.Lookup("Generic")
	assert.Equal(t, base.Vlans, tc.Vlans)
	assert.Equal(t, base.BoardIndex, tc.BoardIndex)
	x440 := r.Lookup("Extreme-X440")
	assert.Equal(t, "3", x440.BoardIndex, "inherited from Extreme")
	assert.NotEqual(t, base.Vlans, x440.Vlans)
}

// Every oid a variant reads must be in the catalogue, so logs and
// swdump can name it.
func TestVariantOIDsCatalogued(t *testing.T) {
	for _, v := range profile.DefaultRegistry().Variants() {
		oids := []string{v.Vlans.List, v.Vlans.Tagged, v.Vlans.Untagged,
			v.PoE.Admin, v.PoE.Detection, v.PoE.Class, v.PoE.Power,
			v.IntVlan.Exists, v.IntVlan.Address, v.IntVlan.Mask, v.IntVlan.Admin}
		if v.VlanType != "" {
			oids = append(oids, v.VlanType)
		}
		for _, o := range oids {
			n, err := smierte.Lookup(o)
			require.NoError(t, err, "%s: %s", v.Name, o)
			assert.NotEmpty(t, n.Name, "%s: %s has no name", v.Name, o)
		}
	}
}

func TestFactory(t *testing.T) {
	r := profile.DefaultRegistry()
	open := func(host string, community string) (swpoll.Session, error) {
		return replay.New(host, strings.NewReader(".1.3.6.1.2.1.1.1.0 = STRING: \"DGS-3420-28PC Gigabit Ethernet Switch\"\n"))
	}
	l, err := r.Factory(open, "10.0.0.1", "public", profile.Options{})
	require.NoError(t, err)
	assert.Equal(t, "D-Link", l.Variant.Name)
	assert.Equal(t, "10.0.0.1", l.Device.Host)
	assert.Equal(t, "D-Link", l.Device.Variant)
	assert.Equal(t, "DGS-3420-28PC Gigabit Ethernet Switch", l.Device.Description)
	assert.Empty(t, l.Device.Ports, "nothing but sysDescr is read")

	var ce *swpoll.ConnectionError
	empty := func(host string, community string) (swpoll.Session, error) {
		return replay.New(host, strings.NewReader(""))
	}
	_, err = r.Factory(empty, "10.0.0.2", "public", profile.Options{})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "10.0.0.2", ce.Target)

	broken := func(host string, community string) (swpoll.Session, error) {
		return nil, errors.New("no route to host")
	}
	_, err = r.Factory(broken, "10.0.0.3", "public", profile.Options{})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "10.0.0.3", ce.Target)
}
