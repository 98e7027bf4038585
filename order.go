/*
 * swpoll orders
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

package swpoll

import (
	"fmt"
	"strings"
)

// Order kicks off one batch. It is what swpoll reads off the queue and
// addjob publishes.
//
// Community overrides the configured default for every target of the
// order. ID is not used by swpoll at all, but included in the metadata
// of every resulting metric so a caller can match result to order.
//
// ClearMaps drops every cached base port map before the batch starts,
// e.g. after a switch has been re-cabled or a stack member replaced.
type Order struct {
	Targets   []string
	Community string `json:",omitempty"`
	ID        string `json:",omitempty"`
	ClearMaps bool   `json:",omitempty"`
}

func (o Order) String() string {
	switch len(o.Targets) {
	case 0:
		return "(empty)"
	case 1:
		return o.Targets[0]
	}
	return fmt.Sprintf("%s+%d", o.Targets[0], len(o.Targets)-1)
}

// Validate rejects orders that can't be run.
func (o Order) Validate() error {
	if len(o.Targets) == 0 {
		return fmt.Errorf("order without targets")
	}
	for _, t := range o.Targets {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("blank target in order")
		}
	}
	return nil
}
