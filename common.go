/*
 * swpoll common types
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

package swpoll

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a rendered OID from the catalogue, e.g.: the result of a
// lookup. Handled by the smierte sub-package, but defined up here to
// avoid circular dependencies.
type Node struct {
	Key       string // input key, kept for posterity
	Name      string // symbolic name, e.g. ifType
	Numeric   string // numeric OID of Name, no leading dot
	Qualified string // Numeric plus whatever index the key carried
}

// Value types, named the way net-snmp prints them. Both session
// implementations render into these so the profile code never knows
// which one it is talking to.
const (
	TypeString    = "STRING"
	TypeHexString = "Hex-STRING"
	TypeInteger   = "INTEGER"
	TypeCounter32 = "Counter32"
	TypeCounter64 = "Counter64"
	TypeGauge32   = "Gauge32"
	TypeTimeticks = "Timeticks"
	TypeIPAddress = "IpAddress"
	TypeOID       = "OID"
	TypeNoSuch    = "NO-SUCH-OBJECT"
)

// NoSuchValue is the value of every missing attribute.
const NoSuchValue = "-1"

// Variable is a single result of a get, getnext or walk.
//
// Strings are quoted, e.g. `"SW-1"` or `"00 1B 21 3A 4F 5C"`, Timeticks
// are "D:HH:MM:SS.hh" and everything else numeric is plain decimal. Raw
// holds the decoded octets of STRING and Hex-STRING values.
type Variable struct {
	OID   string
	Type  string
	Value string
	Raw   []byte
}

// NoSuch returns the sentinel for a missing oid.
func NoSuch(oid string) Variable {
	return Variable{OID: oid, Type: TypeNoSuch, Value: NoSuchValue}
}

// Missing is true for the NO-SUCH-OBJECT sentinel.
func (v Variable) Missing() bool {
	return v.Type == TypeNoSuch
}

func (v Variable) String() string {
	return fmt.Sprintf("%s = %s: %s", v.OID, v.Type, v.Value)
}

// Session is an attribute-addressed read/write channel to one switch.
// Implemented by session.Session (SNMP) and replay.Session (captured
// dumps).
//
// Get and GetNext return one Variable per requested oid, in order. A
// missing attribute is a NoSuch sentinel, not an error.
type Session interface {
	Get(oids ...string) ([]Variable, error)
	GetNext(oids ...string) ([]Variable, error)
	Walk(root string) ([]Variable, error)
	Set(oid string, value string, hint byte) (Variable, error)
	Target() string
	Finalize()
}

// FormatTicks renders hundredths of a second as D:HH:MM:SS.hh.
func FormatTicks(ticks uint64) string {
	secs := ticks / 100
	return fmt.Sprintf("%d:%02d:%02d:%02d.%02d", secs/86400, (secs/3600)%24, (secs/60)%60, secs%60, ticks%100)
}

// ParseTicks is the inverse of FormatTicks, but also accepts the short
// H:MM:SS.hh and MM:SS.hh forms. Fields are weighted from the right.
func ParseTicks(s string) (uint64, error) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	parts := strings.Split(s, ":")
	if len(parts) == 0 || len(parts) > 4 || s == "" {
		return 0, &DecodeError{Value: s, Want: "timeticks"}
	}
	weights := []uint64{1, 60, 3600, 86400}
	var total uint64
	last := parts[len(parts)-1]
	whole, frac, _ := strings.Cut(last, ".")
	sec, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, &DecodeError{Value: s, Want: "timeticks", Err: err}
	}
	total = sec * 100
	if frac != "" {
		if len(frac) == 1 {
			frac += "0"
		}
		h, err := strconv.ParseUint(frac[:2], 10, 64)
		if err != nil {
			return 0, &DecodeError{Value: s, Want: "timeticks", Err: err}
		}
		total += h
	}
	for i := 1; i < len(parts); i++ {
		n, err := strconv.ParseUint(parts[len(parts)-1-i], 10, 64)
		if err != nil {
			return 0, &DecodeError{Value: s, Want: "timeticks", Err: err}
		}
		total += n * weights[i] * 100
	}
	return total, nil
}
