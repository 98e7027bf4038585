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
	"fmt"
	"strconv"

	"github.com/telenornms/swpoll"
)

// Writer changes port settings. It is best effort: a successful Set is
// only as good as the switch's word and nothing is read back.
type Writer struct {
	Session swpoll.Session
}

// SetPVID sets dot1qPvid of a port.
func (w Writer) SetPVID(port int, vlan int) (swpoll.Variable, error) {
	if port < 1 {
		return swpoll.Variable{}, fmt.Errorf("invalid port %d", port)
	}
	if vlan < 0 || vlan > 4095 {
		return swpoll.Variable{}, fmt.Errorf("invalid vlan %d", vlan)
	}
	return w.Session.Set(oidPvid+"."+strconv.Itoa(port), strconv.Itoa(vlan), 'u')
}

// SetAdmin sets ifAdminStatus of a port: 1 up, 2 down, 3 testing.
func (w Writer) SetAdmin(port int, state int) (swpoll.Variable, error) {
	if port < 1 {
		return swpoll.Variable{}, fmt.Errorf("invalid port %d", port)
	}
	if state < 1 || state > 3 {
		return swpoll.Variable{}, fmt.Errorf("invalid admin state %d", state)
	}
	return w.Session.Set(oidIfAdminStatus+"."+strconv.Itoa(port), strconv.Itoa(state), 'i')
}
