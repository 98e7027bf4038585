/*
 * swpoll portlist codec tests
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

package portlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telenornms/swpoll/portlist"
)

func TestBits(t *testing.T) {
	groups := []int{0x01, 0x80}
	assert.Equal(t, 1, portlist.BigEndian.Test(groups, 1))
	assert.Equal(t, 0, portlist.BigEndian.Test(groups, 8))
	assert.Equal(t, 128, portlist.BigEndian.Test(groups, 16))
	assert.Equal(t, 0, portlist.LittleEndian.Test(groups, 1))
	assert.Equal(t, 1, portlist.LittleEndian.Test(groups, 8))
	assert.Equal(t, 128, portlist.LittleEndian.Test(groups, 9))
}

func TestOutOfRange(t *testing.T) {
	groups := []int{0xff}
	for _, c := range []portlist.Codec{portlist.BigEndian, portlist.LittleEndian} {
		assert.Equal(t, 0, c.Test(groups, 9), c.String())
		assert.Equal(t, 0, c.Test(groups, 0), c.String())
		assert.Equal(t, 0, c.Test(nil, 1), c.String())
	}
}

func TestRoundTrip(t *testing.T) {
	ports := []int{1, 2, 7, 8, 9, 19, 24, 28}
	for _, c := range []portlist.Codec{portlist.BigEndian, portlist.LittleEndian} {
		groups := portlist.Encode(c, ports, 4)
		assert.Equal(t, ports, portlist.Ports(c, groups), c.String())
	}
	// ports beyond the groups are dropped
	assert.Equal(t, []int{1}, portlist.Ports(portlist.BigEndian, portlist.Encode(portlist.BigEndian, []int{1, 9}, 1)))
}

func TestParse(t *testing.T) {
	groups, err := portlist.Parse("\"FF FF FB 0f\n00 \"")
	require.NoError(t, err)
	assert.Equal(t, []int{255, 255, 251, 15, 0}, groups)
	// port 19 is the one cleared bit
	assert.Equal(t, 0, portlist.BigEndian.Test(groups, 19))
	assert.NotEqual(t, 0, portlist.BigEndian.Test(groups, 18))

	_, err = portlist.Parse("ZZ")
	assert.Error(t, err)

	assert.Equal(t, []int{0, 132}, portlist.FromBytes([]byte{0x00, 0x84}))
}
