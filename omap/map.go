/*
 * swpoll index maps
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

// Package omap builds index maps from a walked column, typically
// dot1dBasePortIfIndex (bridge port to ifIndex), and caches them.
package omap

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/smierte"
)

// OMap maps the last index element of a column to its integer value.
type OMap struct {
	Map       map[int]int
	Oid       swpoll.Node // OID used to build the map
	Timestamp time.Time   // When was the map created?
}

// BuildOMap walks oid, which can be symbolic.
func BuildOMap(s swpoll.Session, oid string) (*OMap, error) {
	m := &OMap{}
	var err error
	m.Map = make(map[int]int)
	m.Timestamp = time.Now()
	m.Oid, err = smierte.Lookup(oid)
	if err != nil {
		return nil, fmt.Errorf("lookup of oid %s failed: %w", oid, err)
	}
	if m.Oid.Numeric == "" {
		return nil, fmt.Errorf("what happened with smierte.Lookup? m.Oid: %#v", m.Oid)
	}
	vars, err := s.Walk("." + m.Oid.Numeric)
	if err != nil {
		return nil, fmt.Errorf("walk of %s failed: %w", m.Oid.Name, err)
	}
	for _, v := range vars {
		if err := m.add(v); err != nil {
			return nil, err
		}
	}
	since := time.Since(m.Timestamp).Round(time.Millisecond * 100)
	swpoll.Target(s.Target()).Debugf("omap %s built with %d elements in %s", m.Oid.Name, len(m.Map), since.String())
	return m, nil
}

func (m *OMap) add(v swpoll.Variable) error {
	idx := v.OID[strings.LastIndexByte(v.OID, '.')+1:]
	k, err := strconv.Atoi(idx)
	if err != nil {
		return &swpoll.DecodeError{OID: v.OID, Value: idx, Want: "index"}
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.Value))
	if err != nil {
		return &swpoll.DecodeError{OID: v.OID, Value: v.Value, Want: "integer", Err: err}
	}
	m.Map[k] = n
	return nil
}

// Lookup maps idx, returning idx itself when the map doesn't know it.
func (m *OMap) Lookup(idx int) int {
	if m == nil {
		return idx
	}
	if n, ok := m.Map[idx]; ok {
		return n
	}
	return idx
}

type entry struct {
	mu sync.Mutex
	m  *OMap
}

// Cache holds built maps, keyed however the caller likes (variant name,
// host, ...). Safe for concurrent use. Two callers asking for the same
// key at once result in one walk.
type Cache struct {
	MaxAge time.Duration
	mu     sync.Mutex
	maps   map[string]*entry
}

func NewCache(maxAge time.Duration) *Cache {
	return &Cache{MaxAge: maxAge, maps: make(map[string]*entry)}
}

// Get returns the cached map for key, or builds it with s.
func (c *Cache) Get(key string, s swpoll.Session, oid string) (*OMap, error) {
	c.mu.Lock()
	e := c.maps[key]
	if e == nil {
		e = &entry{}
		c.maps[key] = e
	}
	c.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.m != nil {
		if c.MaxAge <= 0 || time.Since(e.m.Timestamp) <= c.MaxAge {
			return e.m, nil
		}
		swpoll.Logf("Deleting aged out omap %s", key)
		e.m = nil
	}
	m, err := BuildOMap(s, oid)
	if err != nil {
		return nil, err
	}
	e.m = m
	return m, nil
}

// Clear nukes the map for key, or every map if key is blank.
func (c *Cache) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == "" {
		c.maps = make(map[string]*entry)
		return
	}
	delete(c.maps, key)
}
