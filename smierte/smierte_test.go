/*
 * swpoll oid catalogue tests
 *
 * Copyright (c) 2022 Telenor Norge AS
 * Author(s):
 *  - Kristian Lyngstøl <kly@kly.no>
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

package smierte_test

import (
	"testing"

	"github.com/telenornms/swpoll/smierte"
)

func TestLookup(t *testing.T) {
	sysName := "1.3.6.1.2.1.1.5"
	sysName543 := "1.3.6.1.2.1.1.5.543"
	sysName123 := "1.3.6.1.2.1.1.5.123"

	node, err := smierte.Lookup("sysName")
	if err != nil {
		t.Errorf("failed to lookup sysName: %v", err)
	}
	if node.Numeric != sysName {
		t.Errorf("expected node numeric to be `%s', got: %s", sysName, node.Numeric)
	}

	node, err = smierte.Lookup("sysName.123")
	if err != nil {
		t.Errorf("failed to lookup sysName.123: %v", err)
	}
	if node.Numeric != sysName {
		t.Errorf("expected node numeric to be `%s', got: %s", sysName, node.Numeric)
	}
	if node.Qualified != sysName123 {
		t.Errorf("expected node qualified to be `%s', got: %s", sysName123, node.Qualified)
	}

	node, err = smierte.Lookup("." + sysName543)
	if err != nil {
		t.Errorf("failed to lookup %s: %v", sysName543, err)
	}
	if node.Name != "sysName" {
		t.Errorf("expected %s to resolve to sysName, got: %s", sysName543, node.Name)
	}
	if node.Qualified != sysName543 {
		t.Errorf("expected node qualified to be `%s', got: %s", sysName543, node.Qualified)
	}

	if _, err := smierte.Lookup("hrSWInstalledName"); err == nil {
		t.Errorf("lookup of a name outside the catalogue should fail")
	}
}

func TestName(t *testing.T) {
	cases := map[string]string{
		".1.3.6.1.2.1.2.2.1.3.17":                "ifType.17",
		".1.0.8802.1.1.2.1.4.1.1.5.0.24.1":       "lldpRemChassisId.0.24.1",
		"1.3.6.1.2.1.17.7.1.4.3.1.2":             "dot1qVlanStaticEgressPorts",
		".1.3.6.1.4.1.99999.1.2":                 ".1.3.6.1.4.1.99999.1.2",
		".1.3.6.1.2.1.31.1.1.1.10.3":             "ifHCOutOctets.3",
		".1.3.6.1.4.1.25506.8.35.2.1.1.1.17.200": "hh3cdot1qVlanPorts.200",
	}
	for in, want := range cases {
		if got := smierte.Name(in); got != want {
			t.Errorf("Name(%s): expected %s, got %s", in, want, got)
		}
	}
}

func TestOID(t *testing.T) {
	o, err := smierte.OID("sysDescr.0")
	if err != nil {
		t.Fatalf("OID(sysDescr.0) failed: %v", err)
	}
	if o != ".1.3.6.1.2.1.1.1.0" {
		t.Errorf("expected .1.3.6.1.2.1.1.1.0, got %s", o)
	}
}
