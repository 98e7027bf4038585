/*
 * swpoll config
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

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration read from a string like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(b))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type conf struct {
	DefaultCommunity string
	Version          string // "1", "2c" or "3"
	User             string // v3 user
	AuthPass         string // v3 SHA passphrase
	PrivPass         string // v3 AES passphrase, blank for authNoPriv
	Workers          int    // parallel order listeners
	Debug            bool
	Broker           string // amqp url
	Queue            string
	OutputConfig     string // skogul config
	Handler          string // skogul handler name
	Timeout          Duration
	Retries          int
	Stagger          Duration // delay between task starts in a batch
	LockTimeout      Duration // bounded wait for the result store
	MaxMapAge        Duration

	// BasePortMapScope is "instance" (walk per device) or "variant"
	// (walk once per vendor variant, reused until MaxMapAge).
	BasePortMapScope string
	UplinkProbe      bool
	ProbeBlacklist   []int // remote PVIDs that are never uplinks
	LoadL3Interfaces bool
}

var Config conf = conf{
	DefaultCommunity: "public",
	Version:          "2c",
	Workers:          4,
	Queue:            "swpoll",
	Handler:          "swpoll",
	Timeout:          Duration{time.Second * 3},
	Retries:          1,
	Stagger:          Duration{time.Millisecond * 100},
	LockTimeout:      Duration{time.Second * 30},
	MaxMapAge:        Duration{time.Minute * 10},
	BasePortMapScope: "instance",
	UplinkProbe:      true,
	ProbeBlacklist:   []int{20, 55},
}

// ParseConfig overlays the toml file at path on top of the defaults.
func ParseConfig(path string) error {
	md, err := toml.DecodeFile(path, &Config)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return fmt.Errorf("unknown keys in %s: %v", path, und)
	}
	if Config.BasePortMapScope != "instance" && Config.BasePortMapScope != "variant" {
		return fmt.Errorf("invalid BasePortMapScope %q", Config.BasePortMapScope)
	}
	return nil
}
