/*
 * swpoll documentation-dummy
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
Package swpoll polls access and distribution switches over SNMP and turns
whatever the vendor of the day exposes into one Device record: identity,
ports, vlan membership, PoE state, LLDP neighbours with uplinks marked,
and the forwarding table.

The root package only holds what every sub-package needs: the Variable
and Session types, errors, configuration and logging. The interesting
bits live in profile (vendor variants and the load sequence) and poller
(running a whole batch of switches in parallel). Results are handed to
Skogul by export.
*/
package swpoll
