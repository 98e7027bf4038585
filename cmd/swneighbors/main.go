/*
 * swpoll neighbour listing
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

// swneighbors lists the LLDP neighbours of a switch and how each was
// classified. Optionally sends the device to skogul.
package main

import (
	"flag"
	"fmt"
	"sort"
	"time"

	sconfig "github.com/telenornms/skogul/config"
	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/device"
	"github.com/telenornms/swpoll/export"
	"github.com/telenornms/swpoll/profile"
	"github.com/telenornms/swpoll/replay"
	"github.com/telenornms/swpoll/session"
)

func main() {
	var configFile, community, dump, output string
	var probe bool
	flag.BoolVar(&swpoll.Config.Debug, "debug", false, "enable debug")
	flag.StringVar(&configFile, "f", "", "swpoll config file, for credentials")
	flag.StringVar(&community, "c", "", "community, blank for the configured default")
	flag.StringVar(&dump, "replay", "", "read from this dump instead of a switch")
	flag.StringVar(&output, "o", "", "skogul config to send the result with")
	flag.BoolVar(&probe, "probe", true, "probe LLDP-MED to classify neighbours")
	flag.Parse()
	if configFile != "" {
		if err := swpoll.ParseConfig(configFile); err != nil {
			swpoll.Fatalf("Couldn't parse config: %s", err)
		}
	}
	swpoll.Init()

	open := profile.Opener(session.Opener(session.ConfigCredentials()))
	target := flag.Arg(0)
	if dump != "" {
		open = func(string, string) (swpoll.Session, error) {
			return replay.Open(dump)
		}
		if target == "" {
			target = dump
		}
	}
	if target == "" {
		swpoll.Fatalf("usage: swneighbors [flags] target")
	}
	opts := profile.Options{Probe: probe, ProbeBlacklist: swpoll.Config.ProbeBlacklist}
	l, err := profile.DefaultRegistry().Factory(open, target, community, opts)
	if err != nil {
		swpoll.Fatalf("%s", err)
	}
	defer l.Close()
	if err := l.GetGeneral(); err != nil {
		swpoll.Fatalf("loading general: %s", err)
	}
	if err := l.GetLldpNeighbors(); err != nil {
		swpoll.Fatalf("loading neighbours: %s", err)
	}
	d := l.Device
	fmt.Printf("%s %s (%s), %d neighbours\n", d.Host, d.Name, l.Variant.Name, len(d.Neighbors))
	ports := make([]int, 0, len(d.Neighbors))
	for p := range d.Neighbors {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	for _, p := range ports {
		n := d.Neighbors[p]
		kind := "edge"
		if d.Uplinks[p] {
			kind = "uplink"
		}
		fmt.Printf("%4d %-6s %-17s %-6s %-20s cap %d\n", p, kind, n.RemoteMAC, n.RemotePort, n.RemoteSysName, n.CapEnabled)
	}

	if output == "" {
		return
	}
	config, err := sconfig.Path(output)
	if err != nil {
		swpoll.Fatalf("Failed to configure Skogul: %v", err)
	}
	h := config.Handlers[swpoll.Config.Handler]
	if h == nil {
		swpoll.Fatalf("missing %s handler in skogul config", swpoll.Config.Handler)
	}
	if err := export.Send(&h.Handler, []*device.Device{d}, time.Now()); err != nil {
		swpoll.Fatalf("%s", err)
	}
}
