/*
 * swpoll snmp session
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

// Package session is the SNMP implementation of swpoll.Session.
package session

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/smierte"
)

// Credentials selects SNMP version and authentication. The zero value
// plus a Community is plain v2c.
type Credentials struct {
	Version   string // "1", "2c" (default) or "3"
	Community string
	User      string // v3 only
	AuthPass  string
	PrivPass  string
}

type Session struct {
	S     *gosnmp.GoSNMP
	Creds Credentials
	host  string
}

func (s *Session) init() error {
	gs := gosnmp.GoSNMP{
		Port:               161,
		Transport:          "udp",
		Community:          s.Creds.Community,
		Version:            gosnmp.Version2c,
		Timeout:            swpoll.Config.Timeout.Duration,
		Retries:            swpoll.Config.Retries,
		ExponentialTimeout: true,
		MaxOids:            gosnmp.MaxOids,
		MaxRepetitions:     10,
	}
	if gs.Timeout == 0 {
		gs.Timeout = time.Duration(3) * time.Second
	}
	switch s.Creds.Version {
	case "1":
		gs.Version = gosnmp.Version1
	case "", "2c", "2":
	case "3":
		gs.Version = gosnmp.Version3
		gs.SecurityModel = gosnmp.UserSecurityModel
		gs.MsgFlags = gosnmp.AuthPriv
		gs.SecurityParameters = &gosnmp.UsmSecurityParameters{
			UserName:                 s.Creds.User,
			AuthenticationProtocol:   gosnmp.SHA,
			AuthenticationPassphrase: s.Creds.AuthPass,
			PrivacyProtocol:          gosnmp.AES,
			PrivacyPassphrase:        s.Creds.PrivPass,
		}
		if s.Creds.PrivPass == "" {
			gs.MsgFlags = gosnmp.AuthNoPriv
		}
	default:
		return fmt.Errorf("unsupported snmp version %q", s.Creds.Version)
	}
	gs.Target = s.host
	err := gs.Connect()
	if err != nil {
		return fmt.Errorf("snmp connect: %w", err)
	}
	s.S = &gs
	return nil
}

func (s *Session) Target() string {
	return s.host
}

func (s *Session) Finalize() {
	if s.S != nil && s.S.Conn != nil {
		s.S.Conn.Close()
	}
}

// Get uses SNMP Get to fetch precise OIDs. It will split it into
// multiple requests of 50 OIDs.
func (s *Session) Get(oids ...string) ([]swpoll.Variable, error) {
	if len(oids) < 1 {
		return nil, fmt.Errorf("refusing to carry out GET for 0 oids")
	}
	ret := make([]swpoll.Variable, 0, len(oids))
	runs := 0
	for i := 0; i < len(oids); i += 50 {
		end := i + 50
		if end > len(oids) {
			end = len(oids)
		}
		vars, err := s.get(oids[i:end])
		if err != nil {
			return nil, err
		}
		ret = append(ret, vars...)
		runs++
	}
	swpoll.Target(s.host).Debugf("get for %d oids finished in %d iterations", len(oids), runs)
	return ret, nil
}

func (s *Session) get(oids []string) ([]swpoll.Variable, error) {
	result, err := s.S.Get(oids)
	if err != nil {
		return nil, s.wrap(err, oids[0])
	}
	return s.collect(oids, result, false)
}

// GetNext returns the next bound OID after each requested OID.
func (s *Session) GetNext(oids ...string) ([]swpoll.Variable, error) {
	if len(oids) < 1 {
		return nil, fmt.Errorf("refusing to carry out GETNEXT for 0 oids")
	}
	result, err := s.S.GetNext(oids)
	if err != nil {
		return nil, s.wrap(err, oids[0])
	}
	return s.collect(oids, result, true)
}

// collect lines the response up with the request, one Variable per
// requested OID.
func (s *Session) collect(oids []string, result *gosnmp.SnmpPacket, next bool) ([]swpoll.Variable, error) {
	if result.Error != gosnmp.NoError {
		if result.Error == gosnmp.NoSuchName {
			// v1 reports a missing oid for the whole packet
			ret := make([]swpoll.Variable, 0, len(oids))
			for _, o := range oids {
				ret = append(ret, swpoll.NoSuch(o))
			}
			return ret, nil
		}
		return nil, fmt.Errorf("response error from %s: %s", s.host, result.Error)
	}
	ret := make([]swpoll.Variable, 0, len(oids))
	for i, o := range oids {
		if i >= len(result.Variables) {
			swpoll.Target(s.host).Logf("short response, %d of %d oids", len(result.Variables), len(oids))
			ret = append(ret, swpoll.NoSuch(o))
			continue
		}
		pdu := result.Variables[i]
		if !next && normalize(pdu.Name) != normalize(o) {
			swpoll.Target(s.host).Logf("Invalid pdu returned? WAT: %s for %s", pdu.Name, smierte.Name(o))
			ret = append(ret, swpoll.NoSuch(o))
			continue
		}
		v := Render(pdu)
		if v.Missing() {
			swpoll.Target(s.host).Debugf("no such object %s", smierte.Name(o))
			v.OID = normalize(o)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Walk uses SNMP GetBulk (GetNext for v1) to fetch a column/table,
// returning every bound OID under root in order.
func (s *Session) Walk(root string) ([]swpoll.Variable, error) {
	root = normalize(root)
	oid := root
	ret := make([]swpoll.Variable, 0, 16)
	iterations := 0
	for ; ; iterations++ {
		var result *gosnmp.SnmpPacket
		var err error
		if s.S.Version == gosnmp.Version1 {
			result, err = s.S.GetNext([]string{oid})
		} else {
			result, err = s.S.GetBulk([]string{oid}, 0, s.S.MaxRepetitions)
		}
		if err != nil {
			return nil, s.wrap(fmt.Errorf("walk failed after %d iterations: %w", iterations, err), root)
		}
		if result.Error == gosnmp.NoSuchName {
			break
		}
		if result.Error != gosnmp.NoError {
			return nil, fmt.Errorf("response error from %s: %s", s.host, result.Error)
		}
		if len(result.Variables) == 0 {
			break
		}
		done := false
		for _, pdu := range result.Variables {
			name := normalize(pdu.Name)
			if pdu.Type == gosnmp.EndOfMibView || !strings.HasPrefix(name, root+".") {
				done = true
				break
			}
			if pdu.Type == gosnmp.NoSuchObject || pdu.Type == gosnmp.NoSuchInstance {
				continue
			}
			ret = append(ret, Render(pdu))
			oid = name
		}
		if done {
			break
		}
	}
	swpoll.Target(s.host).Debugf("walk of %s done in %d iterations with %d hits", smierte.Name(root), iterations, len(ret))
	return ret, nil
}

// Set writes a single value. hint follows net-snmp's snmpset type
// letters.
func (s *Session) Set(oid string, value string, hint byte) (swpoll.Variable, error) {
	pdu, err := Coerce(normalize(oid), value, hint)
	if err != nil {
		return swpoll.Variable{}, err
	}
	result, err := s.S.Set([]gosnmp.SnmpPDU{pdu})
	if err != nil {
		return swpoll.Variable{}, s.wrap(err, oid)
	}
	if result.Error != gosnmp.NoError {
		return swpoll.Variable{}, fmt.Errorf("set %s on %s rejected: %s", smierte.Name(oid), s.host, result.Error)
	}
	if len(result.Variables) == 0 {
		return swpoll.NoSuch(normalize(oid)), nil
	}
	return Render(result.Variables[0]), nil
}

// wrap turns timeouts into *swpoll.TimeoutError and leaves the rest
// alone.
func (s *Session) wrap(err error, oid string) error {
	var nerr net.Error
	if errors.Is(err, os.ErrDeadlineExceeded) ||
		(errors.As(err, &nerr) && nerr.Timeout()) ||
		strings.Contains(err.Error(), "timeout") {
		return &swpoll.TimeoutError{Target: s.host, OID: oid, Err: err}
	}
	return fmt.Errorf("snmp request to %s failed: %w", s.host, err)
}

func normalize(oid string) string {
	if !strings.HasPrefix(oid, ".") {
		return "." + oid
	}
	return oid
}

// NewSession opens a session. Nothing is sent on the wire, so a dead
// target is only discovered on the first request.
func NewSession(target string, creds Credentials) (*Session, error) {
	var s Session
	s.host = target
	s.Creds = creds
	err := s.init()
	if err != nil {
		return nil, &swpoll.ConnectionError{Target: target, Err: err}
	}
	return &s, nil
}

// Opener returns a function that opens sessions with base credentials,
// the community replaced per call when given.
func Opener(base Credentials) func(host string, community string) (swpoll.Session, error) {
	return func(host string, community string) (swpoll.Session, error) {
		c := base
		if community != "" {
			c.Community = community
		}
		s, err := NewSession(host, c)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// ConfigCredentials are the credentials from swpoll.Config.
func ConfigCredentials() Credentials {
	return Credentials{
		Version:   swpoll.Config.Version,
		Community: swpoll.Config.DefaultCommunity,
		User:      swpoll.Config.User,
		AuthPass:  swpoll.Config.AuthPass,
		PrivPass:  swpoll.Config.PrivPass,
	}
}
