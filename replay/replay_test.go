/*
 * swpoll replay session tests
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

package replay_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/replay"
)

const dump = `.1.3.6.1.2.1.1.5.0 = STRING: "SW-OSL-01"
.1.3.6.1.2.1.1.3.0 = Timeticks: (419138582) 48 days, 12:16:25.82
.1.3.6.1.2.1.2.2.1.3.1 = INTEGER: ethernetCsmacd(6)
.1.3.6.1.2.1.2.2.1.3.2 = INTEGER: 117
.1.3.6.1.2.1.2.2.1.3.10 = INTEGER: l3ipvlan(136)
.1.3.6.1.2.1.2.2.1.9.1 = Timeticks: 2395
.1.3.6.1.2.1.17.1.1.0 = Hex-STRING: 00 1B 21 3A 4F 5C
.1.3.6.1.4.1.25506.8.35.2.1.1.1.17.2 = Hex-STRING: FF FF FB 00 00 00 00 00 00 00 00 00
00 00 00 00
.1.0.8802.1.1.2.1.4.1.1.5.0.3.1 = ""
.1.3.6.1.2.1.4.22.1.2.20.10.20.0.1 = STRING: abcdef
`

func open(t *testing.T) *replay.Session {
	t.Helper()
	s, err := replay.New("fixture", strings.NewReader(dump))
	require.NoError(t, err)
	return s
}

func TestNormalise(t *testing.T) {
	s := open(t)
	vars, err := s.Get(
		".1.3.6.1.2.1.1.5.0",
		".1.3.6.1.2.1.1.3.0",
		".1.3.6.1.2.1.2.2.1.3.1",
		".1.3.6.1.2.1.2.2.1.3.10",
		".1.3.6.1.2.1.2.2.1.9.1",
		".1.3.6.1.2.1.17.1.1.0",
		".1.0.8802.1.1.2.1.4.1.1.5.0.3.1",
		".1.3.6.1.2.1.4.22.1.2.20.10.20.0.1",
	)
	require.NoError(t, err)
	require.Len(t, vars, 8)

	assert.Equal(t, `"SW-OSL-01"`, vars[0].Value)
	assert.Equal(t, []byte("SW-OSL-01"), vars[0].Raw)
	assert.Equal(t, "48:12:16:25.82", vars[1].Value)
	assert.Equal(t, "6", vars[2].Value)
	assert.Equal(t, "136", vars[3].Value)
	assert.Equal(t, "0:00:00:23.95", vars[4].Value)
	assert.Equal(t, swpoll.TypeHexString, vars[5].Type)
	assert.Equal(t, `"00 1B 21 3A 4F 5C"`, vars[5].Value)
	assert.Equal(t, []byte{0x00, 0x1b, 0x21, 0x3a, 0x4f, 0x5c}, vars[5].Raw)
	assert.Equal(t, swpoll.TypeString, vars[6].Type)
	assert.Equal(t, `""`, vars[6].Value)
	assert.Equal(t, `"abcdef"`, vars[7].Value)
}

func TestContinuation(t *testing.T) {
	s := open(t)
	vars, err := s.Get(".1.3.6.1.4.1.25506.8.35.2.1.1.1.17.2")
	require.NoError(t, err)
	assert.Len(t, vars[0].Raw, 16)
	assert.Equal(t, byte(0xfb), vars[0].Raw[2])
}

func TestMissing(t *testing.T) {
	s := open(t)
	vars, err := s.Get("1.3.6.1.2.1.1.6.0")
	require.NoError(t, err)
	assert.Equal(t, swpoll.NoSuch(".1.3.6.1.2.1.1.6.0"), vars[0])
	assert.True(t, vars[0].Missing())
}

func TestWalkOrder(t *testing.T) {
	s := open(t)
	vars, err := s.Walk(".1.3.6.1.2.1.2.2.1.3")
	require.NoError(t, err)
	oids := []string{}
	for _, v := range vars {
		oids = append(oids, v.OID)
	}
	// numeric, not textual, ordering
	assert.Equal(t, []string{
		".1.3.6.1.2.1.2.2.1.3.1",
		".1.3.6.1.2.1.2.2.1.3.2",
		".1.3.6.1.2.1.2.2.1.3.10",
	}, oids)

	vars, err = s.Walk(".1.3.6.1.2.1.2.2.1.30")
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestGetNext(t *testing.T) {
	s := open(t)
	vars, err := s.GetNext(
		".1.3.6.1.2.1.2.2.1.3.1",
		".1.0.8802.1.1.2.1.4.1.1.5.0.3",
		".1.3.6.1.4.1.25506.9",
	)
	require.NoError(t, err)
	assert.Equal(t, ".1.3.6.1.2.1.2.2.1.3.1", vars[0].OID)
	assert.Equal(t, ".1.0.8802.1.1.2.1.4.1.1.5.0.3.1", vars[1].OID)
	assert.True(t, vars[2].Missing())
}

func TestSet(t *testing.T) {
	s := open(t)
	v, err := s.Set(".1.3.6.1.2.1.17.7.1.4.5.1.1.3", "20", 'u')
	require.NoError(t, err)
	assert.Equal(t, "20", v.Value)

	vars, err := s.Get(".1.3.6.1.2.1.17.7.1.4.5.1.1.3")
	require.NoError(t, err)
	assert.Equal(t, swpoll.TypeGauge32, vars[0].Type)

	vars, err = s.Walk(".1.3.6.1.2.1.17")
	require.NoError(t, err)
	assert.Len(t, vars, 2)

	_, err = s.Set(".1.3.6.1.2.1.2.2.1.7.3", "down", 'i')
	assert.Error(t, err)
}

func TestBroken(t *testing.T) {
	_, err := replay.New("broken", strings.NewReader("garbage first\n"))
	var cerr *swpoll.ConnectionError
	assert.ErrorAs(t, err, &cerr)
}
