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
	"github.com/telenornms/swpoll/portlist"
)

// unquote is the value without quotes. Missing values stay "-1".
func unquote(v swpoll.Variable) string {
	return strings.TrimSpace(strings.ReplaceAll(v.Value, `"`, ""))
}

// text is unquote, but blank for missing values.
func text(v swpoll.Variable) string {
	if v.Missing() {
		return ""
	}
	return unquote(v)
}

func number(v swpoll.Variable) (int, error) {
	if v.Missing() {
		return -1, nil
	}
	n, err := strconv.Atoi(unquote(v))
	if err != nil {
		return 0, &swpoll.DecodeError{OID: v.OID, Value: v.Value, Want: "integer", Err: err}
	}
	return n, nil
}

// counter reads a 32 or 64 bit counter, device.NoCounter if missing.
func counter(v swpoll.Variable) (uint64, error) {
	if v.Missing() {
		return device.NoCounter, nil
	}
	n, err := strconv.ParseUint(unquote(v), 10, 64)
	if err != nil {
		return 0, &swpoll.DecodeError{OID: v.OID, Value: v.Value, Want: "counter", Err: err}
	}
	return n, nil
}

// lastIndex is the last sub-identifier of an oid.
func lastIndex(oid string) (int, error) {
	idx := oid[strings.LastIndexByte(oid, '.')+1:]
	n, err := strconv.Atoi(idx)
	if err != nil {
		return 0, &swpoll.DecodeError{OID: oid, Value: idx, Want: "index", Err: err}
	}
	return n, nil
}

// suffix returns the index elements of oid below root.
func suffix(oid string, root string) []string {
	s := strings.TrimPrefix(oid, root+".")
	if s == oid {
		return nil
	}
	return strings.Split(s, ".")
}

// octets returns the raw bytes of a string value, parsing the hex form if
// the session didn't provide them.
func octets(v swpoll.Variable) []byte {
	if v.Raw != nil {
		return v.Raw
	}
	if v.Missing() {
		return nil
	}
	groups, err := portlist.Parse(v.Value)
	if err != nil {
		return []byte(unquote(v))
	}
	b := make([]byte, len(groups))
	for i := range groups {
		b[i] = byte(groups[i])
	}
	return b
}

func formatMAC(b []byte) string {
	parts := make([]string, len(b))
	for i := range b {
		parts[i] = fmt.Sprintf("%02x", b[i])
	}
	return strings.Join(parts, ":")
}

// mac accepts six raw octets or a space separated hex string.
func mac(v swpoll.Variable) string {
	if v.Missing() {
		return ""
	}
	if b := v.Raw; len(b) == 6 {
		return formatMAC(b)
	}
	return strings.ToLower(strings.Join(strings.Fields(unquote(v)), ":"))
}

// capability decodes an LLDP capability bitmap to its first octet,
// which holds every capability we test for. Hex strings are read as hex,
// a single character is its own code point.
func capability(v swpoll.Variable) (int, error) {
	if v.Missing() {
		return -1, nil
	}
	if v.Type == swpoll.TypeHexString && len(v.Raw) > 0 {
		return int(v.Raw[0]), nil
	}
	s := strings.ReplaceAll(v.Value, `"`, "")
	if len(s) == 1 {
		return int(s[0]), nil
	}
	if f := strings.Fields(s); len(f) > 0 {
		n, err := strconv.ParseUint(f[0], 16, 8)
		if err == nil {
			return int(n), nil
		}
		if len(v.Raw) > 0 {
			return int(v.Raw[0]), nil
		}
	}
	return 0, &swpoll.DecodeError{OID: v.OID, Value: v.Value, Want: "capability bitmap"}
}
