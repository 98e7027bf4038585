/*
 * swpoll skogul export
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

/*
Package export turns polled devices into skogul metrics. Every device
gives one "device" metric, one "port" metric per port and one "mac"
metric per forwarding database entry, all sharing the host in metadata.
*/
package export

import (
	"fmt"
	"time"

	"github.com/telenornms/skogul"
	"github.com/telenornms/swpoll/device"
)

// Handler is what a skogul handler offers us.
type Handler interface {
	TransformAndSend(c *skogul.Container) error
}

// Container builds one container for a batch of devices, all stamped
// with now.
func Container(devs []*device.Device, now time.Time) *skogul.Container {
	c := skogul.Container{}
	for _, d := range devs {
		c.Metrics = append(c.Metrics, Metrics(d, now)...)
	}
	return &c
}

// Send ships a batch. An empty batch is not sent.
func Send(h Handler, devs []*device.Device, now time.Time) error {
	c := Container(devs, now)
	if len(c.Metrics) == 0 {
		return nil
	}
	if err := h.TransformAndSend(c); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	return nil
}

func metric(d *device.Device, kind string, now time.Time) *skogul.Metric {
	t := now
	m := skogul.Metric{Time: &t}
	m.Metadata = make(map[string]interface{})
	m.Metadata["host"] = d.Host
	m.Metadata["kind"] = kind
	m.Data = make(map[string]interface{})
	return &m
}

// Metrics returns every metric for d.
func Metrics(d *device.Device, now time.Time) []*skogul.Metric {
	ret := make([]*skogul.Metric, 0, 1+len(d.Ports)+len(d.MacTable))
	m := metric(d, "device", now)
	m.Metadata["name"] = d.Name
	m.Metadata["alias"] = d.Alias
	m.Metadata["mac"] = d.MAC
	m.Metadata["ip"] = d.IP
	m.Metadata["vendor"] = d.Vendor
	m.Metadata["model"] = d.Model
	m.Metadata["variant"] = d.Variant
	m.Metadata["serial"] = d.Serial
	m.Metadata["version"] = d.SoftwareVersion
	m.Data["description"] = d.Description
	m.Data["uptime"] = d.Uptime
	m.Data["stp"] = d.STP
	m.Data["stp_root"] = d.STPRoot
	m.Data["ports"] = len(d.Ports)
	m.Data["vlans"] = d.VlanIDs
	m.Data["uplinks"] = d.UplinkPorts()
	m.Data["neighbors"] = len(d.Neighbors)
	m.Data["macs"] = len(d.MacTable)
	m.Data["filtered_macs"] = len(d.FilteredMacs)
	if len(d.L3Interfaces) > 0 {
		l3 := make(map[string]interface{}, len(d.L3Interfaces))
		for vlan, i := range d.L3Interfaces {
			l3[fmt.Sprintf("%d", vlan)] = map[string]interface{}{
				"ip":    i.IP,
				"mask":  i.Mask,
				"admin": i.AdminState,
			}
		}
		m.Data["l3"] = l3
	}
	ret = append(ret, m)

	for _, p := range d.Ports {
		ret = append(ret, portMetric(d, p, now))
	}
	for _, e := range d.MacTable {
		m := metric(d, "mac", now)
		m.Metadata["mac"] = e.MAC
		m.Metadata["vlan"] = e.VLAN
		m.Data["port"] = e.Port
		if e.IP != "" {
			m.Data["ip"] = e.IP
		}
		ret = append(ret, m)
	}
	return ret
}

func portMetric(d *device.Device, p *device.Port, now time.Time) *skogul.Metric {
	m := metric(d, "port", now)
	m.Metadata["port"] = p.Number
	m.Metadata["ifname"] = p.Name
	m.Metadata["ifalias"] = p.Alias
	m.Data["mtu"] = p.MTU
	m.Data["mac"] = p.PhysAddress
	m.Data["speed"] = p.Speed
	m.Data["duplex"] = p.Duplex
	m.Data["admin"] = p.Admin
	m.Data["oper"] = p.Oper
	m.Data["last_change"] = p.LastChange
	counters := map[string]uint64{
		"in_octets":    p.InOctets,
		"out_octets":   p.OutOctets,
		"in_discards":  p.InDiscards,
		"out_discards": p.OutDiscards,
	}
	for k, c := range counters {
		if c != device.NoCounter {
			m.Data[k] = c
		}
	}
	m.Data["stp_admin"] = p.STPAdmin
	m.Data["stp_state"] = p.STPState
	m.Data["pvid"] = p.PVID
	m.Data["vlan_type"] = p.VlanType
	m.Data["tagged"] = p.Tagged
	m.Data["untagged"] = p.Untagged
	m.Data["poe_admin"] = p.PoEAdmin
	m.Data["poe_detection"] = p.PoEDetection
	m.Data["poe_class"] = p.PoEClass
	m.Data["poe_power"] = p.PoEPower
	m.Data["mac_count"] = p.MacCount
	m.Data["uplink"] = d.Uplinks[p.Number]
	if n := d.Neighbors[p.Number]; n != nil {
		m.Data["neighbor"] = map[string]interface{}{
			"chassis":     n.RemoteMAC,
			"port":        n.RemotePort,
			"port_desc":   n.RemotePortDesc,
			"sysname":     n.RemoteSysName,
			"cap_enabled": n.CapEnabled,
		}
	}
	return m
}
