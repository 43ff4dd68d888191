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

package db

import (
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	siteColumns = `id, site_name, COALESCE(location, ''), COALESCE(description, ''), created_at`

	deviceColumns = `id, COALESCE(hostname, ''), ip_address, site_id, device_type,
		COALESCE(vendor, ''), COALESCE(model, ''), COALESCE(os_version, ''),
		COALESCE(snmp_version, ''), COALESCE(snmp_community, ''), status, last_seen,
		ssh_enabled, COALESCE(ssh_username, ''), ssh_port`

	interfaceColumns = `id, device_id, COALESCE(interface_name, ''), COALESCE(description, ''),
		COALESCE(mac_address, ''), COALESCE(status, ''), COALESCE(speed_bps, 0), COALESCE(mtu, 0)`

	statColumns = `id, interface_id, timestamp, COALESCE(in_bps, 0), COALESCE(out_bps, 0)`

	alertColumns = `id, device_id, interface_id, COALESCE(alert_type, ''), severity,
		COALESCE(message, ''), timestamp, acknowledged`

	linkColumns = `id, src_device_id, COALESCE(src_interface, ''), dst_device_id,
		COALESCE(dst_interface, ''), last_seen`

	macChangeColumns = `id, device_id, interface_id, COALESCE(interface_name, ''), old_mac, new_mac, timestamp`
)

func scanSite(row rowScanner) (*models.Site, error) {
	var s models.Site
	if err := row.Scan(&s.ID, &s.SiteName, &s.Location, &s.Description, &s.CreatedAt); err != nil {
		return nil, err
	}

	return &s, nil
}

func scanDevice(row rowScanner) (*models.Device, error) {
	var (
		d      models.Device
		status string
	)

	err := row.Scan(&d.ID, &d.Hostname, &d.IPAddress, &d.SiteID, &d.DeviceType,
		&d.Vendor, &d.Model, &d.OSVersion,
		&d.SNMPVersion, &d.SNMPCommunity, &status, &d.LastSeen,
		&d.SSHEnabled, &d.SSHUsername, &d.SSHPort)
	if err != nil {
		return nil, err
	}

	d.Status = models.DeviceStatus(status)

	return &d, nil
}

func scanInterface(row rowScanner) (*models.Interface, error) {
	var i models.Interface

	err := row.Scan(&i.ID, &i.DeviceID, &i.InterfaceName, &i.Description,
		&i.MACAddress, &i.Status, &i.SpeedBps, &i.MTU)
	if err != nil {
		return nil, err
	}

	return &i, nil
}

func scanStat(row rowScanner) (*models.InterfaceStat, error) {
	var s models.InterfaceStat
	if err := row.Scan(&s.ID, &s.InterfaceID, &s.Timestamp, &s.InBps, &s.OutBps); err != nil {
		return nil, err
	}

	return &s, nil
}

func scanAlert(row rowScanner) (*models.Alert, error) {
	var (
		a        models.Alert
		severity string
	)

	err := row.Scan(&a.ID, &a.DeviceID, &a.InterfaceID, &a.AlertType, &severity,
		&a.Message, &a.Timestamp, &a.Acknowledged)
	if err != nil {
		return nil, err
	}

	a.Severity = models.Severity(severity)

	return &a, nil
}

func scanLink(row rowScanner) (*models.TopologyLink, error) {
	var l models.TopologyLink

	err := row.Scan(&l.ID, &l.SrcDeviceID, &l.SrcInterface, &l.DstDeviceID, &l.DstInterface, &l.LastSeen)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func scanMacChange(row rowScanner) (*models.MacChangeLog, error) {
	var m models.MacChangeLog

	err := row.Scan(&m.ID, &m.DeviceID, &m.InterfaceID, &m.InterfaceName, &m.OldMAC, &m.NewMAC, &m.Timestamp)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// scanSnapshot reads an interface row left-joined to its newest sample; the
// sample columns are all NULL when the interface has never been polled.
func scanSnapshot(row rowScanner) (*models.InterfaceSnapshot, error) {
	var (
		snap   models.InterfaceSnapshot
		i      = &snap.Interface
		statID *int64
		ts     *time.Time
		inBps  *int64
		outBps *int64
	)

	err := row.Scan(&i.ID, &i.DeviceID, &i.InterfaceName, &i.Description,
		&i.MACAddress, &i.Status, &i.SpeedBps, &i.MTU,
		&statID, &ts, &inBps, &outBps)
	if err != nil {
		return nil, err
	}

	if statID != nil {
		snap.Stats = &models.InterfaceStat{
			ID:          *statID,
			InterfaceID: i.ID,
			Timestamp:   derefTime(ts),
			InBps:       derefInt64(inBps),
			OutBps:      derefInt64(outBps),
		}
	}

	return &snap, nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}
