/*
 * swpoll log-wrappers
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

package swpoll

/*
log.go wraps the standard logger. Everything that polls a switch logs
through Target, which prefixes the switch address, since a batch polls
dozens of switches at once and unprefixed lines are useless.

Debug* checks Config.Debug before formatting anything, so debug calls in
the per-OID paths are free when debugging is off.
*/

import (
	"fmt"
	"log"
	"os"
)

func Init() {
	d := log.Default()
	if Config.Debug {
		d.SetFlags(log.Ltime | log.Lshortfile)
	} else {
		d.SetFlags(log.Ltime)
	}
}

func Log(v ...any) {
	log.Output(2, fmt.Sprint(v...))
}

func Logf(format string, v ...any) {
	log.Output(2, fmt.Sprintf(format, v...))
}

func Fatalf(format string, v ...any) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

func Debugf(format string, v ...any) {
	if Config.Debug {
		log.Output(2, fmt.Sprintf(format, v...))
	}
}

// Target is a logger prefixing every line with a switch address.
type Target string

func (t Target) Logf(format string, v ...any) {
	log.Output(2, fmt.Sprintf("%-15s "+format, append([]any{string(t)}, v...)...))
}

func (t Target) Debugf(format string, v ...any) {
	if Config.Debug {
		log.Output(2, fmt.Sprintf("%-15s "+format, append([]any{string(t)}, v...)...))
	}
}
