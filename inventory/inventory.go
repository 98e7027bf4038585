/*
 * swpoll inventory
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
Package inventory hands out per-target locks and credentials. One poll of
a switch at a time: a second LockHost for a target that is still being
polled fails rather than queueing.

Credentials come from configuration only. Orders may override the
community.
*/
package inventory

import (
	"fmt"
	"sync"

	"github.com/telenornms/swpoll"
)

var targets sync.Map

type Host struct {
	Address   string
	Community string
}

// LockHost acquires a host-level lock and relevant credentials. A blank
// community means the configured default. Must call h.Unlock() when
// done.
func LockHost(t string, community string) (Host, error) {
	h := Host{}
	_, loaded := targets.LoadOrStore(t, 1)
	if loaded {
		return h, fmt.Errorf("target %s still locked, refusing to start more runs", t)
	}
	h.Address = t
	h.Community = community
	if h.Community == "" {
		h.Community = swpoll.Config.DefaultCommunity
	}
	return h, nil
}

// Unlock releases the host-level lock.
func (h *Host) Unlock() {
	targets.Delete(h.Address)
}
