/*
 * swpoll dump tool
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

// swdump walks subtrees of a switch and prints them in the replay
// format, so the output can be fed straight back to replay.Open. With
// -variants it lists the known variants instead, and with -resolve it
// prints which variant the switch resolves to.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/profile"
	"github.com/telenornms/swpoll/replay"
	"github.com/telenornms/swpoll/session"
	"github.com/telenornms/swpoll/smierte"
)

func main() {
	var configFile, community, dump string
	var variants, resolve, names bool
	flag.BoolVar(&swpoll.Config.Debug, "debug", false, "enable debug")
	flag.StringVar(&configFile, "f", "", "swpoll config file, for credentials")
	flag.StringVar(&community, "c", "", "community, blank for the configured default")
	flag.StringVar(&dump, "replay", "", "read from this dump instead of a switch")
	flag.BoolVar(&variants, "variants", false, "list known variants and exit")
	flag.BoolVar(&resolve, "resolve", false, "print the variant the target resolves to")
	flag.BoolVar(&names, "names", false, "print symbolic names instead of numeric oids")
	flag.Parse()
	if configFile != "" {
		if err := swpoll.ParseConfig(configFile); err != nil {
			swpoll.Fatalf("Couldn't parse config: %s", err)
		}
	}
	swpoll.Init()
	reg := profile.DefaultRegistry()
	if variants {
		for _, v := range reg.Variants() {
			fmt.Printf("%-20s %s\n", v.Name, v.Parent)
		}
		return
	}

	args := flag.Args()
	var s swpoll.Session
	var err error
	if dump != "" {
		s, err = replay.Open(dump)
	} else {
		if len(args) < 1 {
			swpoll.Fatalf("usage: swdump [flags] target [subtree...]")
		}
		s, err = session.Opener(session.ConfigCredentials())(args[0], community)
		args = args[1:]
	}
	if err != nil {
		swpoll.Fatalf("failed to start session: %s", err)
	}
	defer s.Finalize()

	if resolve {
		v, err := s.Get(".1.3.6.1.2.1.1.1.0")
		if err != nil {
			swpoll.Fatalf("get sysDescr failed: %s", err)
		}
		descr := strings.Trim(v[0].Value, `"`)
		fmt.Printf("%s: %s (%s)\n", s.Target(), reg.Resolve(descr).Name, descr)
		return
	}
	if len(args) == 0 {
		args = []string{".1.3.6.1"}
	}
	for _, arg := range args {
		oid, err := smierte.OID(arg)
		if err != nil {
			swpoll.Fatalf("unable to lookup %s: %s", arg, err)
		}
		vars, err := s.Walk(oid)
		if err != nil {
			swpoll.Fatalf("walk of %s failed: %s", arg, err)
		}
		for _, v := range vars {
			if names {
				v.OID = smierte.Name(v.OID)
			}
			fmt.Fprintln(os.Stdout, v.String())
		}
	}
}
