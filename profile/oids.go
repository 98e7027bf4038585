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

// Every oid here has a name in smierte's catalogue.
const (
	oidSysDescr      = ".1.3.6.1.2.1.1.1.0"
	oidSysUpTime     = ".1.3.6.1.2.1.1.3.0"
	oidSysName       = ".1.3.6.1.2.1.1.5.0"
	oidBridgeAddress = ".1.3.6.1.2.1.17.1.1.0"
	oidStpRootCost   = ".1.3.6.1.2.1.17.2.7.0"

	oidEntPhysical = ".1.3.6.1.2.1.47.1.1.1.1"

	oidIfDescr       = ".1.3.6.1.2.1.2.2.1.2"
	oidIfType        = ".1.3.6.1.2.1.2.2.1.3"
	oidIfMtu         = ".1.3.6.1.2.1.2.2.1.4"
	oidIfSpeed       = ".1.3.6.1.2.1.2.2.1.5"
	oidIfPhysAddress = ".1.3.6.1.2.1.2.2.1.6"
	oidIfAdminStatus = ".1.3.6.1.2.1.2.2.1.7"
	oidIfOperStatus  = ".1.3.6.1.2.1.2.2.1.8"
	oidIfLastChange  = ".1.3.6.1.2.1.2.2.1.9"
	oidIfInOctets    = ".1.3.6.1.2.1.2.2.1.10"
	oidIfInDiscards  = ".1.3.6.1.2.1.2.2.1.13"
	oidIfOutOctets   = ".1.3.6.1.2.1.2.2.1.16"
	oidIfOutDiscards = ".1.3.6.1.2.1.2.2.1.19"
	oidDuplex        = ".1.3.6.1.2.1.10.7.2.1.19"
	oidIfHCInOctets  = ".1.3.6.1.2.1.31.1.1.1.6"
	oidIfHCOutOctets = ".1.3.6.1.2.1.31.1.1.1.10"
	oidIfAlias       = ".1.3.6.1.2.1.31.1.1.1.18"

	oidIPNetToMediaPhys = ".1.3.6.1.2.1.4.22.1.2"

	oidBasePortIfIndex = ".1.3.6.1.2.1.17.1.4.1.2"
	oidStpPortState    = ".1.3.6.1.2.1.17.2.15.1.3"
	oidStpPortEnable   = ".1.3.6.1.2.1.17.2.15.1.4"
	oidTpFdbPort       = ".1.3.6.1.2.1.17.7.1.2.2.1.2"
	oidQVlanFdbID      = ".1.3.6.1.2.1.17.7.1.4.2.1.3"
	oidQStaticEgress   = ".1.3.6.1.2.1.17.7.1.4.3.1.2"
	oidQStaticUntagged = ".1.3.6.1.2.1.17.7.1.4.3.1.4"
	oidPvid            = ".1.3.6.1.2.1.17.7.1.4.5.1.1"

	oidPethAdmin     = ".1.3.6.1.2.1.105.1.1.1.3"
	oidPethDetection = ".1.3.6.1.2.1.105.1.1.1.6"
	oidPethClass     = ".1.3.6.1.2.1.105.1.1.1.10"

	oidLldpLocPortDesc     = ".1.0.8802.1.1.2.1.3.7.1.4"
	oidLldpRemChassisSub   = ".1.0.8802.1.1.2.1.4.1.1.4"
	oidLldpRemChassisID    = ".1.0.8802.1.1.2.1.4.1.1.5"
	oidLldpRemPortSub      = ".1.0.8802.1.1.2.1.4.1.1.6"
	oidLldpRemPortID       = ".1.0.8802.1.1.2.1.4.1.1.7"
	oidLldpRemPortDesc     = ".1.0.8802.1.1.2.1.4.1.1.8"
	oidLldpRemSysName      = ".1.0.8802.1.1.2.1.4.1.1.9"
	oidLldpRemCapSupported = ".1.0.8802.1.1.2.1.4.1.1.11"
	oidLldpRemCapEnabled   = ".1.0.8802.1.1.2.1.4.1.1.12"
	oidLldpRemPoEEnabled   = ".1.0.8802.1.1.2.1.5.4623.1.2.2.1.3"
	oidLldpRemPowerClass   = ".1.0.8802.1.1.2.1.5.4623.1.2.2.1.6"
	oidLldpRemPortVlan     = ".1.0.8802.1.1.2.1.5.32962.1.2.1.1.1"

	oidA3comIfVlanType    = ".1.3.6.1.4.1.43.45.1.2.23.1.1.1.1.5"
	oidA3comVlanIndex     = ".1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.1"
	oidA3comVlanIfStatus  = ".1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.7"
	oidA3comVlanPorts     = ".1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.17"
	oidA3comVlanUntagged  = ".1.3.6.1.4.1.43.45.1.2.23.1.2.1.1.1.18"
	oidA3comVlanIPAddress = ".1.3.6.1.4.1.43.45.1.2.23.1.2.1.2.1.3"
	oidA3comVlanIPMask    = ".1.3.6.1.4.1.43.45.1.2.23.1.2.1.2.1.4"
	oidA3comVlanIPAdmin   = ".1.3.6.1.4.1.43.45.1.2.23.1.2.1.2.1.5"
	oidA3comPsePortPower  = ".1.3.6.1.4.1.43.45.1.10.2.14.1.1.3"

	oidHH3CPsePortPower  = ".1.3.6.1.4.1.25506.2.14.1.1.3"
	oidHH3CIfVlanType    = ".1.3.6.1.4.1.25506.8.35.1.1.1.5"
	oidHH3CVlanIndex     = ".1.3.6.1.4.1.25506.8.35.2.1.1.1.1"
	oidHH3CVlanIfStatus  = ".1.3.6.1.4.1.25506.8.35.2.1.1.1.7"
	oidHH3CVlanPorts     = ".1.3.6.1.4.1.25506.8.35.2.1.1.1.17"
	oidHH3CVlanUntagged  = ".1.3.6.1.4.1.25506.8.35.2.1.1.1.18"
	oidHH3CVlanIPAddress = ".1.3.6.1.4.1.25506.8.35.2.1.2.1.3"
	oidHH3CVlanIPMask    = ".1.3.6.1.4.1.25506.8.35.2.1.2.1.4"
	oidHH3CVlanIPAdmin   = ".1.3.6.1.4.1.25506.8.35.2.1.2.1.5"

	oidHwL2IfPortType  = ".1.3.6.1.4.1.2011.5.25.42.1.1.1.3.1.3"
	oidHwL2VlanDescr   = ".1.3.6.1.4.1.2011.5.25.42.3.1.1.1.1.2"
	oidHwPoePortEnable = ".1.3.6.1.4.1.2011.5.25.195.3.1.3"
	oidHwPoePortStatus = ".1.3.6.1.4.1.2011.5.25.195.3.1.6"
	oidHwPoePortPower  = ".1.3.6.1.4.1.2011.5.25.195.3.1.10"

	oidDlinkL3IfName     = ".1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.1"
	oidDlinkL3IPAddr     = ".1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.3"
	oidDlinkL3IPMask     = ".1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.4"
	oidDlinkL3Admin      = ".1.3.6.1.4.1.171.11.119.3.3.2.1.3.1.9"
	oidDlinkPoECtrlState = ".1.3.6.1.4.1.171.12.24.3.1.1.2"
	oidDlinkPoEClass     = ".1.3.6.1.4.1.171.12.24.4.1.1.2"
	oidDlinkPoEPower     = ".1.3.6.1.4.1.171.12.24.4.1.1.3"
	oidDlinkPoELedStatus = ".1.3.6.1.4.1.171.12.24.4.1.1.7"

	oidExtremeVlanID       = ".1.3.6.1.4.1.1916.1.2.1.2.1.10"
	oidExtremeVlanTagged   = ".1.3.6.1.4.1.1916.1.2.6.1.1.1"
	oidExtremeVlanUntagged = ".1.3.6.1.4.1.1916.1.2.6.1.1.2"
	oidExtremePoEPower     = ".1.3.6.1.4.1.1916.1.27.2.1.1.6"
)
