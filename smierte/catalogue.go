/*
 * swpoll oid catalogue
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

package smierte

// Vendor table names follow the vendor MIB where we know it. Where the
// MIB is lost to history the name describes the column.
var catalogue = [][2]string{
	// SNMPv2-MIB
	{"sysDescr", "1.3.6.1.2.1.1.1"},
	{"sysUpTime", "1.3.6.1.2.1.1.3"},
	{"sysName", "1.3.6.1.2.1.1.5"},

	// IF-MIB, EtherLike-MIB
	{"ifDescr", "1.3.6.1.2.1.2.2.1.2"},
	{"ifType", "1.3.6.1.2.1.2.2.1.3"},
	{"ifMtu", "1.3.6.1.2.1.2.2.1.4"},
	{"ifSpeed", "1.3.6.1.2.1.2.2.1.5"},
	{"ifPhysAddress", "1.3.6.1.2.1.2.2.1.6"},
	{"ifAdminStatus", "1.3.6.1.2.1.2.2.1.7"},
	{"ifOperStatus", "1.3.6.1.2.1.2.2.1.8"},
	{"ifLastChange", "1.3.6.1.2.1.2.2.1.9"},
	{"ifInOctets", "1.3.6.1.2.1.2.2.1.10"},
	{"ifInDiscards", "1.3.6.1.2.1.2.2.1.13"},
	{"ifOutOctets", "1.3.6.1.2.1.2.2.1.16"},
	{"ifOutDiscards", "1.3.6.1.2.1.2.2.1.19"},
	{"dot3StatsDuplexStatus", "1.3.6.1.2.1.10.7.2.1.19"},
	{"ifHCInOctets", "1.3.6.1.2.1.31.1.1.1.6"},
	{"ifHCOutOctets", "1.3.6.1.2.1.31.1.1.1.10"},
	{"ifAlias", "1.3.6.1.2.1.31.1.1.1.18"},

	// IP-MIB
	{"ipNetToMediaPhysAddress", "1.3.6.1.2.1.4.22.1.2"},

	// BRIDGE-MIB, Q-BRIDGE-MIB
	{"dot1dBaseBridgeAddress", "1.3.6.1.2.1.17.1.1"},
	{"dot1dBasePortIfIndex", "1.3.6.1.2.1.17.1.4.1.2"},
	{"dot1dStpRootCost", "1.3.6.1.2.1.17.2.7"},
	{"dot1dStpPortState", "1.3.6.1.2.1.17.2.15.1.3"},
	{"dot1dStpPortEnable", "1.3.6.1.2.1.17.2.15.1.4"},
	{"dot1qTpFdbPort", "1.3.6.1.2.1.17.7.1.2.2.1.2"},
	{"dot1qVlanFdbId", "1.3.6.1.2.1.17.7.1.4.2.1.3"},
	{"dot1qVlanStaticEgressPorts", "1.3.6.1.2.1.17.7.1.4.3.1.2"},
	{"dot1qVlanStaticUntaggedPorts", "1.3.6.1.2.1.17.7.1.4.3.1.4"},
	{"dot1qPvid", "1.3.6.1.2.1.17.7.1.4.5.1.1"},

	// ENTITY-MIB
	{"entPhysicalName", "1.3.6.1.2.1.47.1.1.1.1.7"},
	{"entPhysicalSoftwareRev", "1.3.6.1.2.1.47.1.1.1.1.10"},
	{"entPhysicalSerialNum", "1.3.6.1.2.1.47.1.1.1.1.11"},
	{"entPhysicalMfgName", "1.3.6.1.2.1.47.1.1.1.1.12"},
	{"entPhysicalModelName", "1.3.6.1.2.1.47.1.1.1.1.13"},

	// POWER-ETHERNET-MIB
	{"pethPsePortAdminEnable", "1.3.6.1.2.1.105.1.1.1.3"},
	{"pethPsePortDetectionStatus", "1.3.6.1.2.1.105.1.1.1.6"},
	{"pethPsePortPowerClassifications", "1.3.6.1.2.1.105.1.1.1.10"},

	// LLDP-MIB and the 802.1/802.3 extensions
	{"lldpLocPortDesc", "1.0.8802.1.1.2.1.3.7.1.4"},
	{"lldpRemChassisIdSubtype", "1.0.8802.1.1.2.1.4.1.1.4"},
	{"lldpRemChassisId", "1.0.8802.1.1.2.1.4.1.1.5"},
	{"lldpRemPortIdSubtype", "1.0.8802.1.1.2.1.4.1.1.6"},
	{"lldpRemPortId", "1.0.8802.1.1.2.1.4.1.1.7"},
	{"lldpRemPortDesc", "1.0.8802.1.1.2.1.4.1.1.8"},
	{"lldpRemSysName", "1.0.8802.1.1.2.1.4.1.1.9"},
	{"lldpRemSysCapSupported", "1.0.8802.1.1.2.1.4.1.1.11"},
	{"lldpRemSysCapEnabled", "1.0.8802.1.1.2.1.4.1.1.12"},
	{"lldpXdot3RemPowerMDIEnabled", "1.0.8802.1.1.2.1.5.4623.1.2.2.1.3"},
	{"lldpXdot3RemPowerClass", "1.0.8802.1.1.2.1.5.4623.1.2.2.1.6"},
	{"lldpXdot1RemPortVlanId", "1.0.8802.1.1.2.1.5.32962.1.2.1.1.1"},

	// 3Com / HPN (A3COM-HUAWEI-LswVLAN-MIB and friends)
	{"a3comIfVlanType", "1.3.6.1.4.1.43.45.1.2.23.1.1.1.1.5"},
	{"a3comVlanIndex", "1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.1"},
	{"a3comVlanIfStatus", "1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.7"},
	{"a3comVlanPorts", "1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.17"},
	{"a3comVlanUntaggedPorts", "1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.18"},
	{"a3comVlanIpAddress", "1.3.6.1.4.1.43.45.1.2.23.1.2.1.2.1.3"},
	{"a3comVlanIpMask", "1.3.6.1.4.1.43.45.1.2.23.1.2.1.2.1.4"},
	{"a3comVlanIpAdmin", "1.3.6.1.4.1.43.45.1.2.23.1.2.1.2.1.5"},
	{"a3comPsePortPower", "1.3.6.1.4.1.43.45.1.10.2.14.1.1.3"},

	// HH3C
	{"hh3cPsePortPower", "1.3.6.1.4.1.25506.2.14.1.1.3"},
	{"hh3cifVLANType", "1.3.6.1.4.1.25506.8.35.1.1.1.5"},
	{"hh3cdot1qVlanIndex", "1.3.6.1.4.1.25506.8.35.2.1.1.1.1"},
	{"hh3cdot1qVlanIfStatus", "1.3.6.1.4.1.25506.8.35.2.1.1.1.7"},
	{"hh3cdot1qVlanPorts", "1.3.6.1.4.1.25506.8.35.2.1.1.1.17"},
	{"hh3cdot1qVlanUntaggedPorts", "1.3.6.1.4.1.25506.8.35.2.1.1.1.18"},
	{"hh3cdot1qVlanIpAddress", "1.3.6.1.4.1.25506.8.35.2.1.2.1.3"},
	{"hh3cdot1qVlanIpMask", "1.3.6.1.4.1.25506.8.35.2.1.2.1.4"},
	{"hh3cdot1qVlanIpAdmin", "1.3.6.1.4.1.25506.8.35.2.1.2.1.5"},

	// Huawei
	{"hwL2IfPortType", "1.3.6.1.4.1.2011.5.25.42.1.1.1.3.1.3"},
	{"hwL2VlanDescr", "1.3.6.1.4.1.2011.5.25.42.3.1.1.1.1.2"},
	{"hwPoePortEnable", "1.3.6.1.4.1.2011.5.25.195.3.1.3"},
	{"hwPoePortStatus", "1.3.6.1.4.1.2011.5.25.195.3.1.6"},
	{"hwPoePortPower", "1.3.6.1.4.1.2011.5.25.195.3.1.10"},

	// D-Link
	{"swL3IpCtrlInterfaceName", "1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.1"},
	{"swL3IpCtrlIpAddr", "1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.3"},
	{"swL3IpCtrlIpSubnetMask", "1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.4"},
	{"swL3IpCtrlAdminState", "1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.9"},
	{"swPoEPortCtrlState", "1.3.6.1.4.1.171.12.24.3.1.1.2"},
	{"swPoEPortInfoClass", "1.3.6.1.4.1.171.12.24.4.1.1.2"},
	{"swPoEPortInfoPower", "1.3.6.1.4.1.171.12.24.4.1.1.3"},
	{"swPoEPortInfoLedStatus", "1.3.6.1.4.1.171.12.24.4.1.1.7"},

	// Extreme
	{"extremeVlanIfVlanId", "1.3.6.1.4.1.1916.1.2.1.2.1.10"},
	{"extremeVlanOpaqueTaggedPorts", "1.3.6.1.4.1.1916.1.2.6.1.1.1"},
	{"extremeVlanOpaqueUntaggedPorts", "1.3.6.1.4.1.1916.1.2.6.1.1.2"},
	{"extremePethPortMeasuredPower", "1.3.6.1.4.1.1916.1.27.2.1.1.6"},
}
