/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package models holds the configuration documents and domain records shared
// by the netwatch core, simulator and dashboard client.
package models

import "time"

// DeviceStatus is the reachability state of a device.
type DeviceStatus string

const (
	DeviceStatusUp      DeviceStatus = "up"
	DeviceStatusDown    DeviceStatus = "down"
	DeviceStatusWarning DeviceStatus = "warning"
	DeviceStatusUnknown DeviceStatus = "unknown"
)

// Valid reports whether s is one of the four known device states.
func (s DeviceStatus) Valid() bool {
	switch s {
	case DeviceStatusUp, DeviceStatusDown, DeviceStatusWarning, DeviceStatusUnknown:
		return true
	default:
		return false
	}
}

// Severity classifies an alert.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

func (s Severity) Valid() bool {
	return s == SeverityCritical || s == SeverityWarning || s == SeverityInfo
}

const (
	InterfaceStatusUp   = "up"
	InterfaceStatusDown = "down"

	AlertTypeInterfaceDown = "interface_down"
	AlertTypeMacChange     = "mac_change"
)

// Site groups devices by physical location.
type Site struct {
	ID          int64     `json:"id"`
	SiteName    string    `json:"siteName"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Device is a monitored network element. SSH credentials are never serialized.
type Device struct {
	ID            int64        `json:"id"`
	Hostname      string       `json:"hostname"`
	IPAddress     string       `json:"ipAddress"`
	SiteID        *int64       `json:"siteId"`
	DeviceType    string       `json:"deviceType"`
	Vendor        string       `json:"vendor"`
	Model         string       `json:"model"`
	OSVersion     string       `json:"osVersion"`
	SNMPVersion   string       `json:"snmpVersion"`
	SNMPCommunity string       `json:"snmpCommunity"`
	Status        DeviceStatus `json:"status"`
	LastSeen      *time.Time   `json:"lastSeen"`
	SSHEnabled    bool         `json:"sshEnabled"`
	SSHUsername   string       `json:"sshUsername"`
	SSHPort       int          `json:"sshPort"`
}

// DisplayName is the hostname, falling back to the management address.
func (d *Device) DisplayName() string {
	if d.Hostname != "" {
		return d.Hostname
	}

	return d.IPAddress
}

// DevicePatch carries a partial device update; nil fields are left unchanged.
type DevicePatch struct {
	Hostname      *string       `json:"hostname,omitempty"`
	IPAddress     *string       `json:"ipAddress,omitempty"`
	SiteID        *int64        `json:"siteId,omitempty"`
	DeviceType    *string       `json:"deviceType,omitempty"`
	Vendor        *string       `json:"vendor,omitempty"`
	Model         *string       `json:"model,omitempty"`
	OSVersion     *string       `json:"osVersion,omitempty"`
	SNMPVersion   *string       `json:"snmpVersion,omitempty"`
	SNMPCommunity *string       `json:"snmpCommunity,omitempty"`
	Status        *DeviceStatus `json:"status,omitempty"`
	SSHEnabled    *bool         `json:"sshEnabled,omitempty"`
	SSHUsername   *string       `json:"sshUsername,omitempty"`
	SSHPort       *int          `json:"sshPort,omitempty"`
}

// Apply copies the set fields of p onto d.
func (p *DevicePatch) Apply(d *Device) {
	setString(&d.Hostname, p.Hostname)
	setString(&d.IPAddress, p.IPAddress)
	setString(&d.DeviceType, p.DeviceType)
	setString(&d.Vendor, p.Vendor)
	setString(&d.Model, p.Model)
	setString(&d.OSVersion, p.OSVersion)
	setString(&d.SNMPVersion, p.SNMPVersion)
	setString(&d.SNMPCommunity, p.SNMPCommunity)
	setString(&d.SSHUsername, p.SSHUsername)

	if p.SiteID != nil {
		d.SiteID = p.SiteID
	}

	if p.Status != nil {
		d.Status = *p.Status
	}

	if p.SSHEnabled != nil {
		d.SSHEnabled = *p.SSHEnabled
	}

	if p.SSHPort != nil {
		d.SSHPort = *p.SSHPort
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Interface is a port on a device.
type Interface struct {
	ID            int64  `json:"id"`
	DeviceID      int64  `json:"deviceId"`
	InterfaceName string `json:"interfaceName"`
	Description   string `json:"description"`
	MACAddress    string `json:"macAddress"`
	Status        string `json:"status"`
	SpeedBps      int64  `json:"speedBps"`
	MTU           int    `json:"mtu"`
}

// InterfaceStat is one throughput sample for an interface.
type InterfaceStat struct {
	ID          int64     `json:"id"`
	InterfaceID int64     `json:"interfaceId"`
	Timestamp   time.Time `json:"timestamp"`
	InBps       int64     `json:"inBps"`
	OutBps      int64     `json:"outBps"`
}

// InterfaceSnapshot pairs an interface with its most recent sample, if any.
type InterfaceSnapshot struct {
	Interface Interface      `json:"interface"`
	Stats     *InterfaceStat `json:"stats"`
}

// InterfaceStatsSeries pairs an interface with its recent samples, newest first.
type InterfaceStatsSeries struct {
	Interface Interface       `json:"interface"`
	Stats     []InterfaceStat `json:"stats"`
}

// Alert is a condition raised against a device or interface.
type Alert struct {
	ID           int64     `json:"id"`
	DeviceID     *int64    `json:"deviceId"`
	InterfaceID  *int64    `json:"interfaceId"`
	AlertType    string    `json:"alertType"`
	Severity     Severity  `json:"severity"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	Acknowledged bool      `json:"acknowledged"`
}

// TopologyLink is a discovered adjacency between two device ports.
type TopologyLink struct {
	ID           int64     `json:"id"`
	SrcDeviceID  int64     `json:"srcDeviceId"`
	SrcInterface string    `json:"srcInterface"`
	DstDeviceID  int64     `json:"dstDeviceId"`
	DstInterface string    `json:"dstInterface"`
	LastSeen     time.Time `json:"lastSeen"`
}

// MacChangeLog records an interface whose hardware address changed.
type MacChangeLog struct {
	ID            int64     `json:"id"`
	DeviceID      int64     `json:"deviceId"`
	InterfaceID   *int64    `json:"interfaceId"`
	InterfaceName string    `json:"interface"`
	OldMAC        string    `json:"oldMac"`
	NewMAC        string    `json:"newMac"`
	Timestamp     time.Time `json:"timestamp"`
}

// DeviceStatusUpdate is the payload of a device_update event.
type DeviceStatusUpdate struct {
	ID     int64        `json:"id"`
	Status DeviceStatus `json:"status"`
}
