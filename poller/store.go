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

package poller

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
)

// Store is the shared result registry of a batch, keyed by host. Writers
// wait at most the lock timeout.
type Store struct {
	lock    *semaphore.Weighted
	timeout time.Duration
	devices map[string]*device.Device
	root    *device.Device
}

func NewStore(timeout time.Duration) *Store {
	return &Store{
		lock:    semaphore.NewWeighted(1),
		timeout: timeout,
		devices: make(map[string]*device.Device),
	}
}

func (s *Store) acquire() error {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.lock.Acquire(ctx, 1); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return swpoll.ErrLockTimeout
		}
		return err
	}
	return nil
}

// Publish adds d and keeps track of the device with the lowest STP root
// cost, the provisional topology root. Devices without a root cost are
// never root.
func (s *Store) Publish(d *device.Device) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.lock.Release(1)
	s.devices[d.Host] = d
	if d.STP >= 0 && (s.root == nil || d.STP < s.root.STP) {
		s.root = d
	}
	return nil
}

// Root returns the topology root, or nil.
func (s *Store) Root() *device.Device {
	if err := s.acquire(); err != nil {
		return nil
	}
	defer s.lock.Release(1)
	return s.root
}

// Device returns the device polled from host, or nil.
func (s *Store) Device(host string) *device.Device {
	if err := s.acquire(); err != nil {
		return nil
	}
	defer s.lock.Release(1)
	return s.devices[host]
}

// Devices returns every device, sorted by host.
func (s *Store) Devices() []*device.Device {
	if err := s.acquire(); err != nil {
		return nil
	}
	defer s.lock.Release(1)
	ret := make([]*device.Device, 0, len(s.devices))
	for _, d := range s.devices {
		ret = append(ret, d)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Host < ret[j].Host
	})
	return ret
}

func (s *Store) Len() int {
	return len(s.Devices())
}
