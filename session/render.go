/*
 * swpoll snmp value rendering
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

package session

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/gosnmp/gosnmp"
	"github.com/telenornms/swpoll"
)

// Render converts a PDU to the net-snmp-ish text form the replay files
// use, so profiles parse one format regardless of where data came from.
func Render(pdu gosnmp.SnmpPDU) swpoll.Variable {
	v := swpoll.Variable{OID: normalize(pdu.Name)}
	switch pdu.Type {
	case gosnmp.OctetString, gosnmp.Opaque, gosnmp.BitString:
		b, ok := pdu.Value.([]byte)
		if !ok {
			b = []byte(fmt.Sprint(pdu.Value))
		}
		v.Raw = b
		if printable(b) {
			v.Type = swpoll.TypeString
			v.Value = `"` + string(b) + `"`
		} else {
			v.Type = swpoll.TypeHexString
			v.Value = `"` + HexGroups(b) + `"`
		}
	case gosnmp.Integer:
		v.Type = swpoll.TypeInteger
		v.Value = gosnmp.ToBigInt(pdu.Value).String()
	case gosnmp.Counter32:
		v.Type = swpoll.TypeCounter32
		v.Value = gosnmp.ToBigInt(pdu.Value).String()
	case gosnmp.Counter64:
		v.Type = swpoll.TypeCounter64
		v.Value = gosnmp.ToBigInt(pdu.Value).String()
	case gosnmp.Gauge32, gosnmp.Uinteger32:
		v.Type = swpoll.TypeGauge32
		v.Value = gosnmp.ToBigInt(pdu.Value).String()
	case gosnmp.TimeTicks:
		v.Type = swpoll.TypeTimeticks
		v.Value = swpoll.FormatTicks(gosnmp.ToBigInt(pdu.Value).Uint64())
	case gosnmp.IPAddress:
		v.Type = swpoll.TypeIPAddress
		switch ip := pdu.Value.(type) {
		case string:
			v.Value = ip
		case []byte:
			v.Value = net.IP(ip).String()
		default:
			v.Value = fmt.Sprint(ip)
		}
	case gosnmp.ObjectIdentifier:
		v.Type = swpoll.TypeOID
		v.Value = fmt.Sprint(pdu.Value)
	default:
		// NoSuchObject, NoSuchInstance, EndOfMibView, Null
		return swpoll.NoSuch(v.OID)
	}
	return v
}

// HexGroups renders octets as upper case hex separated by spaces, e.g.
// "00 1B 21 3A 4F 5C".
func HexGroups(b []byte) string {
	groups := make([]string, len(b))
	for i := range b {
		groups[i] = strings.ToUpper(hex.EncodeToString(b[i : i+1]))
	}
	return strings.Join(groups, " ")
}

func printable(b []byte) bool {
	for _, c := range b {
		if (c < 0x20 || c > 0x7e) && c != '\n' && c != '\r' && c != '\t' {
			return false
		}
	}
	return true
}

// Coerce builds a PDU from a value and a snmpset type letter: i
// (integer), u (unsigned), c (counter32), t (timeticks), a (ipaddress),
// o (oid), s (string) and x (hex string).
func Coerce(oid string, value string, hint byte) (gosnmp.SnmpPDU, error) {
	pdu := gosnmp.SnmpPDU{Name: oid}
	switch hint {
	case 'i':
		n, err := strconv.Atoi(value)
		if err != nil {
			return pdu, &swpoll.DecodeError{OID: oid, Value: value, Want: "integer", Err: err}
		}
		pdu.Type = gosnmp.Integer
		pdu.Value = n
	case 'u', 'c', 't':
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return pdu, &swpoll.DecodeError{OID: oid, Value: value, Want: "unsigned", Err: err}
		}
		pdu.Type = map[byte]gosnmp.Asn1BER{'u': gosnmp.Gauge32, 'c': gosnmp.Counter32, 't': gosnmp.TimeTicks}[hint]
		pdu.Value = uint32(n)
	case 'a':
		if net.ParseIP(value).To4() == nil {
			return pdu, &swpoll.DecodeError{OID: oid, Value: value, Want: "ipv4 address"}
		}
		pdu.Type = gosnmp.IPAddress
		pdu.Value = value
	case 'o':
		pdu.Type = gosnmp.ObjectIdentifier
		pdu.Value = value
	case 's':
		pdu.Type = gosnmp.OctetString
		pdu.Value = []byte(value)
	case 'x':
		b, err := hex.DecodeString(strings.ReplaceAll(value, " ", ""))
		if err != nil {
			return pdu, &swpoll.DecodeError{OID: oid, Value: value, Want: "hex string", Err: err}
		}
		pdu.Type = gosnmp.OctetString
		pdu.Value = b
	default:
		return pdu, fmt.Errorf("unknown type hint %q for %s", hint, oid)
	}
	return pdu, nil
}
