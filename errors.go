/*
 * swpoll errors
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
	"errors"
	"fmt"
)

// ErrLockTimeout is returned when the result store could not be locked
// within the configured wait.
var ErrLockTimeout = errors.New("result store lock timeout")

// ConnectionError means the switch never answered: the session could not
// be opened or the initial sysDescr fetch failed.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// TimeoutError is a single request that timed out after retries.
type TimeoutError struct {
	Target string
	OID    string
	Err    error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out (%s): %v", e.Target, e.OID, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// DecodeError is a value that did not have the expected shape.
type DecodeError struct {
	OID   string
	Value string
	Want  string
	Err   error
}

func (e *DecodeError) Error() string {
	s := fmt.Sprintf("unable to decode %q as %s", e.Value, e.Want)
	if e.OID != "" {
		s += " at " + e.OID
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ClassifierFallback records that uplink classification of a port failed
// and the port was marked as an uplink anyway.
type ClassifierFallback struct {
	Port int
	Err  error
}

func (e *ClassifierFallback) Error() string {
	return fmt.Sprintf("uplink classification of port %d failed, assuming uplink: %v", e.Port, e.Err)
}

func (e *ClassifierFallback) Unwrap() error {
	return e.Err
}
