/*
 * swpoll poller
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
Package poller polls a batch of switches in parallel. Every host gets its
own task. A failing host is recorded in the Report and contributes nothing
to the Store, the rest of the batch carries on.
*/
package poller

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/inventory"
	"github.com/telenornms/swpoll/omap"
	"github.com/telenornms/swpoll/profile"
)

type Poller struct {
	Registry    *profile.Registry
	Open        profile.Opener
	Community   string // blank for the configured default
	Options     profile.Options
	Stagger     time.Duration // between task starts
	LockTimeout time.Duration // for publishing to the Store
	LoadL3      bool
}

// New sets up a poller from swpoll.Config.
func New(reg *profile.Registry, open profile.Opener) *Poller {
	c := swpoll.Config
	p := &Poller{
		Registry:    reg,
		Open:        open,
		Stagger:     c.Stagger.Duration,
		LockTimeout: c.LockTimeout.Duration,
		LoadL3:      c.LoadL3Interfaces,
		Options: profile.Options{
			Probe:              c.UplinkProbe,
			ProbeBlacklist:     c.ProbeBlacklist,
			BasePorts:          omap.NewCache(c.MaxMapAge.Duration),
			BasePortsByVariant: c.BasePortMapScope == "variant",
		},
	}
	return p
}

// Report sums up a batch.
type Report struct {
	Total    int
	Success  int
	Failures map[string]error
	Root     string // host of the topology root, blank if none
	Duration time.Duration
}

func (r Report) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "%d/%d hosts polled in %s", r.Success, r.Total, r.Duration.Round(time.Millisecond))
	if r.Root != "" {
		fmt.Fprintf(&b, ", root %s", r.Root)
	}
	hosts := make([]string, 0, len(r.Failures))
	for h := range r.Failures {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	for _, h := range hosts {
		fmt.Fprintf(&b, "\n%-15s FAIL %v", h, r.Failures[h])
	}
	return b.String()
}

// PollAll polls hosts, duplicates ignored. It returns when every task
// has finished. MAC entries are enriched from the root's ARP cache and
// port MAC counts set before returning.
func (p *Poller) PollAll(hosts []string) (*Store, Report) {
	start := time.Now()
	store := NewStore(p.LockTimeout)
	rep := Report{Failures: make(map[string]error)}
	var mu sync.Mutex

	seen := make(map[string]bool)
	wp := pool.New()
	for _, host := range hosts {
		if seen[host] {
			continue
		}
		seen[host] = true
		if rep.Total > 0 && p.Stagger > 0 {
			time.Sleep(p.Stagger)
		}
		rep.Total++
		host := host
		wp.Go(func() {
			now := time.Now()
			err := p.safePoll(store, host)
			since := time.Since(now).Round(time.Millisecond * 10)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				swpoll.Logf("%-15s FAIL %s: %s", host, since, err)
				rep.Failures[host] = err
				return
			}
			swpoll.Logf("%-15s OK %s", host, since)
			rep.Success++
		})
	}
	wp.Wait()

	root := store.Root()
	for _, d := range store.Devices() {
		profile.Enrich(d, root)
		d.CountMacs()
	}
	if root != nil {
		rep.Root = root.Host
	}
	rep.Duration = time.Since(start)
	return store, rep
}

// safePoll turns a panic in one host's task into that host's failure.
func (p *Poller) safePoll(store *Store, host string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while polling %s: %v", host, r)
		}
	}()
	return p.poll(store, host)
}

func (p *Poller) poll(store *Store, host string) error {
	h, err := inventory.LockHost(host, p.Community)
	if err != nil {
		return err
	}
	defer h.Unlock()
	l, err := p.Registry.Factory(p.Open, host, h.Community, p.Options)
	if err != nil {
		return err
	}
	defer l.Close()
	if err := l.Load(); err != nil {
		return err
	}
	d := l.Device
	if d.STP == 0 {
		if err := l.GetIPMac(); err != nil {
			return fmt.Errorf("loading arp cache: %w", err)
		}
	}
	if p.LoadL3 {
		if err := l.GetIntVlan(); err != nil {
			return fmt.Errorf("loading l3 interfaces: %w", err)
		}
	}
	return store.Publish(d)
}
