/*
 * swpoll replay session
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
Package replay implements swpoll.Session on top of a captured walk, the
output of `snmpwalk -On` or cmd/swdump:

	.1.3.6.1.2.1.1.5.0 = STRING: "SW-OSL-01"
	.1.3.6.1.2.1.2.2.1.3.1 = INTEGER: ethernetCsmacd(6)
	.1.3.6.1.2.1.2.2.1.9.1 = Timeticks: (2395) 0:00:23.95
	.1.0.8802.1.1.2.1.4.1.1.5.0.3.1 = ""

Lines not starting with a dot and a digit continue the previous value,
which is how long Hex-STRINGs wrap.
*/
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sleepinggenius2/gosmi/types"
	"github.com/telenornms/swpoll"
)

type record struct {
	oid types.Oid
	v   swpoll.Variable
}

// Session is a read-mostly view of a dump. Set updates the in-memory
// copy only.
type Session struct {
	name    string
	mu      sync.RWMutex
	byOID   map[string]int
	records []record // sorted by oid
}

// Open reads a dump from disk.
func Open(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &swpoll.ConnectionError{Target: path, Err: err}
	}
	defer f.Close()
	return New(path, f)
}

// New parses a dump from r. name is what Target reports.
func New(name string, r io.Reader) (*Session, error) {
	s := &Session{name: name, byOID: make(map[string]int)}
	raw, err := parse(r)
	if err != nil {
		return nil, &swpoll.ConnectionError{Target: name, Err: err}
	}
	for _, v := range raw {
		oid, err := types.OidFromString(strings.TrimPrefix(v.OID, "."))
		if err != nil {
			return nil, &swpoll.ConnectionError{Target: name, Err: fmt.Errorf("bad oid %s: %w", v.OID, err)}
		}
		v = normalize(v)
		if i, ok := s.byOID[v.OID]; ok {
			s.records[i].v = v
			continue
		}
		s.byOID[v.OID] = len(s.records)
		s.records = append(s.records, record{oid: oid, v: v})
	}
	sort.SliceStable(s.records, func(i, j int) bool {
		return compare(s.records[i].oid, s.records[j].oid) < 0
	})
	for i, r := range s.records {
		s.byOID[r.v.OID] = i
	}
	swpoll.Debugf("replay %s: %d records", name, len(s.records))
	return s, nil
}

// parse splits the dump into raw, un-normalised variables.
func parse(r io.Reader) ([]swpoll.Variable, error) {
	ret := make([]swpoll.Variable, 0, 256)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) > 1 && line[0] == '.' && line[1] >= '0' && line[1] <= '9' {
			oid, rest, ok := strings.Cut(line, " = ")
			if !ok {
				return nil, fmt.Errorf("line %d: missing ` = '", lineno)
			}
			v := swpoll.Variable{OID: oid}
			if strings.TrimSpace(rest) == `""` {
				v.Type = swpoll.TypeString
				v.Value = `""`
			} else {
				typ, content, _ := strings.Cut(rest, " ")
				v.Type = strings.TrimSuffix(typ, ":")
				v.Value = content
			}
			ret = append(ret, v)
			continue
		}
		if len(ret) == 0 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("line %d: continuation before first record", lineno)
		}
		ret[len(ret)-1].Value += "\n" + line
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

var enumRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*\((-?[0-9]+)\)$`)
var ticksRe = regexp.MustCompile(`^\(([0-9]+)\)`)

// normalize applies the rendering rules of the live session: strings
// quoted, ticks as D:HH:MM:SS.hh and enumerations reduced to their
// number.
func normalize(v swpoll.Variable) swpoll.Variable {
	content := strings.TrimSpace(v.Value)
	switch v.Type {
	case swpoll.TypeString, swpoll.TypeHexString:
		if len(content) < 2 || content[0] != '"' || content[len(content)-1] != '"' {
			content = `"` + content + `"`
		}
		v.Value = content
		v.Raw = octets(v.Type, content)
	case swpoll.TypeTimeticks:
		raw := content
		if m := ticksRe.FindStringSubmatch(content); m != nil {
			raw = m[1]
		}
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			v.Value = swpoll.FormatTicks(n)
		} else {
			v.Value = content
		}
	default:
		if m := enumRe.FindStringSubmatch(content); m != nil {
			content = m[1]
		}
		v.Value = content
	}
	return v
}

func octets(typ string, quoted string) []byte {
	inner := quoted[1 : len(quoted)-1]
	if typ == swpoll.TypeString {
		return []byte(inner)
	}
	fields := strings.Fields(inner)
	b := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil
		}
		b = append(b, byte(n))
	}
	return b
}

func compare(a, b types.Oid) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

func dotted(oid string) string {
	if !strings.HasPrefix(oid, ".") {
		return "." + oid
	}
	return oid
}

func (s *Session) Target() string {
	return s.name
}

func (s *Session) Finalize() {}

// Get returns exact matches.
func (s *Session) Get(oids ...string) ([]swpoll.Variable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]swpoll.Variable, 0, len(oids))
	for _, o := range oids {
		o = dotted(o)
		if i, ok := s.byOID[o]; ok {
			ret = append(ret, s.records[i].v)
		} else {
			ret = append(ret, swpoll.NoSuch(o))
		}
	}
	return ret, nil
}

// GetNext returns the first record at or after each oid. Bound oids
// return themselves; captures of the LLDP lookups were made that way.
func (s *Session) GetNext(oids ...string) ([]swpoll.Variable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]swpoll.Variable, 0, len(oids))
	for _, o := range oids {
		o = dotted(o)
		oid, err := types.OidFromString(o[1:])
		if err != nil {
			return nil, &swpoll.DecodeError{OID: o, Value: o, Want: "oid", Err: err}
		}
		i := s.search(oid)
		if i < len(s.records) {
			ret = append(ret, s.records[i].v)
		} else {
			ret = append(ret, swpoll.NoSuch(o))
		}
	}
	return ret, nil
}

// Walk returns root itself, if bound, and everything below it.
func (s *Session) Walk(root string) ([]swpoll.Variable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	root = dotted(root)
	oid, err := types.OidFromString(root[1:])
	if err != nil {
		return nil, &swpoll.DecodeError{OID: root, Value: root, Want: "oid", Err: err}
	}
	ret := make([]swpoll.Variable, 0, 16)
	for i := s.search(oid); i < len(s.records); i++ {
		r := s.records[i]
		if len(r.oid) < len(oid) || compare(r.oid[:len(oid)], oid) != 0 {
			break
		}
		ret = append(ret, r.v)
	}
	return ret, nil
}

// Set stores the value as a string of the type the hint asks for.
func (s *Session) Set(oid string, value string, hint byte) (swpoll.Variable, error) {
	oid = dotted(oid)
	parsed, err := types.OidFromString(oid[1:])
	if err != nil {
		return swpoll.Variable{}, &swpoll.DecodeError{OID: oid, Value: oid, Want: "oid", Err: err}
	}
	v := swpoll.Variable{OID: oid, Value: value}
	switch hint {
	case 'i':
		v.Type = swpoll.TypeInteger
	case 'u':
		v.Type = swpoll.TypeGauge32
	case 'c':
		v.Type = swpoll.TypeCounter32
	case 't':
		v.Type = swpoll.TypeTimeticks
	case 'a':
		v.Type = swpoll.TypeIPAddress
	case 'o':
		v.Type = swpoll.TypeOID
	case 's':
		v.Type = swpoll.TypeString
	case 'x':
		v.Type = swpoll.TypeHexString
	default:
		return swpoll.Variable{}, fmt.Errorf("unknown type hint %q for %s", hint, oid)
	}
	if v.Type == swpoll.TypeInteger || v.Type == swpoll.TypeGauge32 {
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return swpoll.Variable{}, &swpoll.DecodeError{OID: oid, Value: value, Want: "integer", Err: err}
		}
	}
	v = normalize(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byOID[oid]; ok {
		s.records[i].v = v
		return v, nil
	}
	i := s.search(parsed)
	s.records = append(s.records, record{})
	copy(s.records[i+1:], s.records[i:])
	s.records[i] = record{oid: parsed, v: v}
	for j := i; j < len(s.records); j++ {
		s.byOID[s.records[j].v.OID] = j
	}
	return v, nil
}

// search returns the index of the first record >= oid.
func (s *Session) search(oid types.Oid) int {
	return sort.Search(len(s.records), func(i int) bool {
		return compare(s.records[i].oid, oid) >= 0
	})
}
