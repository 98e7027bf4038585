/*
 * swpoll portlist codec
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

/*
Package portlist decodes vlan membership bitfields, one bit per port,
eight ports per byte. Vendors disagree on which end of the byte is the
first port, hence two codecs.
*/
package portlist

import (
	"strconv"
	"strings"
)

// Codec tests and sets port bits in a list of byte groups.
type Codec interface {
	// Test returns the non-zero bit value if port is a member.
	Test(groups []int, port int) int
	bit(port int) int
	String() string
}

type bigEndian struct{}
type littleEndian struct{}

// BigEndian has port 1 in the least significant bit of the first
// byte.
var BigEndian Codec = bigEndian{}

// LittleEndian has port 1 in the most significant bit, as Q-BRIDGE
// PortList does.
var LittleEndian Codec = littleEndian{}

func (bigEndian) bit(port int) int {
	return 1 << ((port - 1) % 8)
}

func (bigEndian) Test(groups []int, port int) int {
	return test(BigEndian, groups, port)
}

func (bigEndian) String() string {
	return "big-endian"
}

func (littleEndian) bit(port int) int {
	return 128 >> ((port - 1) % 8)
}

func (littleEndian) Test(groups []int, port int) int {
	return test(LittleEndian, groups, port)
}

func (littleEndian) String() string {
	return "little-endian"
}

func test(c Codec, groups []int, port int) int {
	if port < 1 {
		return 0
	}
	idx := (port - 1) / 8
	if idx >= len(groups) {
		return 0
	}
	return groups[idx] & c.bit(port)
}

// Encode builds n byte groups with the given ports set.
func Encode(c Codec, ports []int, n int) []int {
	groups := make([]int, n)
	for _, p := range ports {
		if p < 1 || (p-1)/8 >= n {
			continue
		}
		groups[(p-1)/8] |= c.bit(p)
	}
	return groups
}

// Ports lists the member ports in ascending order.
func Ports(c Codec, groups []int) []int {
	ret := []int{}
	for p := 1; p <= len(groups)*8; p++ {
		if c.Test(groups, p) != 0 {
			ret = append(ret, p)
		}
	}
	return ret
}

// Parse reads hex groups such as "FF FB 00 0f", ignoring quotes and
// line breaks.
func Parse(s string) ([]int, error) {
	s = strings.ReplaceAll(s, `"`, "")
	fields := strings.Fields(s)
	ret := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, err
		}
		ret = append(ret, int(n))
	}
	return ret, nil
}

// FromBytes converts raw octets to groups.
func FromBytes(b []byte) []int {
	ret := make([]int, len(b))
	for i := range b {
		ret[i] = int(b[i])
	}
	return ret
}
