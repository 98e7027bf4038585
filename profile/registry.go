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
	"errors"
	"fmt"

	"github.com/telenornms/swpoll"
)

// Registry holds the variant tree. Children are tried in registration
// order.
type Registry struct {
	root     *Variant
	byName   map[string]*Variant
	children map[string][]*Variant
}

func NewRegistry(root *Variant) *Registry {
	return &Registry{
		root:     root,
		byName:   map[string]*Variant{root.Name: root},
		children: make(map[string][]*Variant),
	}
}

// Register adds v below its Parent, which must already be registered.
func (r *Registry) Register(v *Variant) error {
	if _, ok := r.byName[v.Name]; ok {
		return fmt.Errorf("variant %s already registered", v.Name)
	}
	if _, ok := r.byName[v.Parent]; !ok {
		return fmt.Errorf("variant %s: unknown parent %q", v.Name, v.Parent)
	}
	if v.Match == nil {
		return fmt.Errorf("variant %s has no match predicate", v.Name)
	}
	r.byName[v.Name] = v
	r.children[v.Parent] = append(r.children[v.Parent], v)
	return nil
}

// Lookup returns a variant by name, or nil.
func (r *Registry) Lookup(name string) *Variant {
	return r.byName[name]
}

// Resolve picks the deepest variant whose predicate, and every
// ancestor's, accepts descr. Never nil.
func (r *Registry) Resolve(descr string) *Variant {
	v := r.root
	for {
		next := (*Variant)(nil)
		for _, c := range r.children[v.Name] {
			if c.Match(descr) {
				next = c
				break
			}
		}
		if next == nil {
			return v
		}
		v = next
	}
}

// Variants lists every registered variant, parents before children.
func (r *Registry) Variants() []*Variant {
	ret := []*Variant{}
	queue := []*Variant{r.root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		ret = append(ret, v)
		queue = append(queue, r.children[v.Name]...)
	}
	return ret
}

// DefaultRegistry has every family we know.
func DefaultRegistry() *Registry {
	base := Generic()
	r := NewRegistry(base)
	families := [][]*Variant{threeCom(base), dlink(base), extreme(base), hh3c(base), huawei(base)}
	for _, f := range families {
		for _, v := range f {
			if err := r.Register(v); err != nil {
				panic(err)
			}
		}
	}
	return r
}

// Opener opens a session to a host.
type Opener func(host string, community string) (swpoll.Session, error)

// Factory opens a session, reads sysDescr and binds the resolved
// variant to it. Nothing beyond sysDescr is read. Every failure is a
// *swpoll.ConnectionError.
func (r *Registry) Factory(open Opener, host string, community string, opts Options) (*Loader, error) {
	sess, err := open(host, community)
	if err != nil {
		var ce *swpoll.ConnectionError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &swpoll.ConnectionError{Target: host, Err: err}
	}
	vars, err := sess.Get(oidSysDescr)
	if err != nil {
		sess.Finalize()
		return nil, &swpoll.ConnectionError{Target: host, Err: fmt.Errorf("sysDescr: %w", err)}
	}
	if len(vars) != 1 || vars[0].Missing() {
		sess.Finalize()
		return nil, &swpoll.ConnectionError{Target: host, Err: fmt.Errorf("no sysDescr")}
	}
	descr := text(vars[0])
	v := r.Resolve(descr)
	swpoll.Target(host).Debugf("resolved to %s", v.Name)
	l := NewLoader(v, sess, opts)
	l.Device.Host = host
	l.log = swpoll.Target(host)
	l.Device.Description = descr
	return l, nil
}
