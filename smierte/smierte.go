/*
 * swpoll oid catalogue
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

/*
Package smierte maps symbolic OID names to numeric OIDs and back. The name
is a play on SMI and smerte (pain), because this is such a painful process.

There is no MIB loading here. The catalogue is the fixed set of objects the
switch profiles read, vendor tables included, which is all the tooling and
debug logging need to render names.
*/
package smierte

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/sleepinggenius2/gosmi/types"
	"github.com/telenornms/swpoll"
)

// cache is an internal lookup cache for Nodes. So far, extremely simple
// with no LRU or anything, the catalogue is fixed so it can't go stale.
var cache sync.Map

var byName = map[string]string{}
var byNumeric = map[string]string{}

func init() {
	for _, e := range catalogue {
		if _, err := types.OidFromString(e[1]); err != nil {
			panic(fmt.Sprintf("smierte: bad catalogue entry %s: %v", e[0], err))
		}
		byName[e[0]] = e[1]
		byNumeric[e[1]] = e[0]
	}
}

var numericRe = regexp.MustCompile(`^\.?[0-9]+(\.[0-9]+)*$`)

// Lookup resolves "ifType", "ifType.3", "1.3.6.1.2.1.2.2.1.3.3" or the
// same with a leading dot. Numeric input resolves to the longest
// catalogue prefix. Unknown names are an error, unknown numeric OIDs are
// returned unnamed.
func Lookup(item string) (swpoll.Node, error) {
	if chit, ok := cache.Load(item); ok {
		cast, _ := chit.(*swpoll.Node)
		return *cast, nil
	}
	var ret swpoll.Node
	ret.Key = item
	if numericRe.MatchString(item) {
		oid, err := types.OidFromString(strings.TrimPrefix(item, "."))
		if err != nil {
			return ret, fmt.Errorf("unable to parse numeric oid %s: %w", item, err)
		}
		ret.Qualified = strings.TrimPrefix(oid.String(), ".")
		ret.Name, ret.Numeric = longest(ret.Qualified)
		if ret.Numeric == "" {
			ret.Numeric = ret.Qualified
		}
	} else {
		name, idx, _ := strings.Cut(item, ".")
		num, ok := byName[name]
		if !ok {
			return ret, fmt.Errorf("%s is not in the oid catalogue", name)
		}
		ret.Name = name
		ret.Numeric = num
		ret.Qualified = num
		if idx != "" {
			ret.Qualified = num + "." + idx
		}
	}
	cache.Store(item, &ret)
	return ret, nil
}

// OID returns the dotted numeric form of a lookup, e.g. ".1.3.6.1.2.1.1.5.0"
// for "sysName.0".
func OID(item string) (string, error) {
	n, err := Lookup(item)
	if err != nil {
		return "", err
	}
	return "." + n.Qualified, nil
}

// Name renders a numeric OID symbolically, e.g. "ifType.3". OIDs outside
// the catalogue are returned as-is.
func Name(oid string) string {
	n, err := Lookup(oid)
	if err != nil || n.Name == "" {
		return oid
	}
	if n.Qualified == n.Numeric {
		return n.Name
	}
	return n.Name + n.Qualified[len(n.Numeric):]
}

func longest(numeric string) (string, string) {
	cand := numeric
	for {
		if name, ok := byNumeric[cand]; ok {
			return name, cand
		}
		i := strings.LastIndexByte(cand, '.')
		if i < 0 {
			return "", ""
		}
		cand = cand[:i]
	}
}
