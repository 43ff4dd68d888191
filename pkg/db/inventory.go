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
	"context"
	"fmt"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	listSitesQuery  = `SELECT ` + siteColumns + ` FROM sites ORDER BY id`
	getSiteQuery    = `SELECT ` + siteColumns + ` FROM sites WHERE id = $1`
	insertSiteQuery = `INSERT INTO sites (site_name, location, description)
		VALUES ($1, $2, $3)
		RETURNING ` + siteColumns
	updateSiteQuery = `UPDATE sites SET site_name = $2, location = $3, description = $4
		WHERE id = $1
		RETURNING ` + siteColumns
	deleteSiteQuery = `DELETE FROM sites WHERE id = $1`

	listDevicesQuery  = `SELECT ` + deviceColumns + ` FROM devices ORDER BY id`
	getDeviceQuery    = `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`
	insertDeviceQuery = `INSERT INTO devices (
			hostname, ip_address, site_id, device_type, vendor, model, os_version,
			snmp_version, snmp_community, status, ssh_enabled, ssh_username, ssh_port
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + deviceColumns
	updateDeviceQuery = `UPDATE devices SET
			hostname = $2, ip_address = $3, site_id = $4, device_type = $5, vendor = $6,
			model = $7, os_version = $8, snmp_version = $9, snmp_community = $10,
			status = $11, ssh_enabled = $12, ssh_username = $13, ssh_port = $14
		WHERE id = $1
		RETURNING ` + deviceColumns
	deleteDeviceQuery       = `DELETE FROM devices WHERE id = $1`
	updateDeviceStatusQuery = `UPDATE devices SET status = $2, last_seen = $3 WHERE id = $1`

	listInterfacesQuery       = `SELECT ` + interfaceColumns + ` FROM interfaces ORDER BY id`
	getInterfaceQuery         = `SELECT ` + interfaceColumns + ` FROM interfaces WHERE id = $1`
	listDeviceInterfacesQuery = `SELECT ` + interfaceColumns + ` FROM interfaces WHERE device_id = $1 ORDER BY id`
	insertInterfaceQuery      = `INSERT INTO interfaces (
			device_id, interface_name, description, mac_address, status, speed_bps, mtu
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + interfaceColumns
	updateInterfaceStateQuery = `UPDATE interfaces SET status = $2, mac_address = $3 WHERE id = $1`
)

func (db *DB) ListSites(ctx context.Context) ([]models.Site, error) {
	return queryList(ctx, db.conn, "sites", scanSite, listSitesQuery)
}

func (db *DB) GetSite(ctx context.Context, id int64) (*models.Site, error) {
	return queryOne(ctx, db.conn, fmt.Sprintf("site %d", id), scanSite, getSiteQuery, id)
}

func (db *DB) CreateSite(ctx context.Context, site *models.Site) (*models.Site, error) {
	if err := validateSite(site); err != nil {
		return nil, err
	}

	return queryOne(ctx, db.conn, "insert site", scanSite, insertSiteQuery, buildSiteArgs(site)...)
}

func (db *DB) UpdateSite(ctx context.Context, site *models.Site) (*models.Site, error) {
	if err := validateSite(site); err != nil {
		return nil, err
	}

	args := append([]any{site.ID}, buildSiteArgs(site)...)

	return queryOne(ctx, db.conn, fmt.Sprintf("site %d", site.ID), scanSite, updateSiteQuery, args...)
}

func (db *DB) DeleteSite(ctx context.Context, id int64) error {
	return db.execOne(ctx, fmt.Sprintf("site %d", id), deleteSiteQuery, id)
}

func validateSite(site *models.Site) error {
	if site == nil || site.SiteName == "" {
		return ErrSiteNameRequired
	}

	return nil
}

func buildSiteArgs(site *models.Site) []any {
	return []any{site.SiteName, nullString(site.Location), nullString(site.Description)}
}

func (db *DB) ListDevices(ctx context.Context) ([]models.Device, error) {
	return queryList(ctx, db.conn, "devices", scanDevice, listDevicesQuery)
}

func (db *DB) GetDevice(ctx context.Context, id int64) (*models.Device, error) {
	return queryOne(ctx, db.conn, fmt.Sprintf("device %d", id), scanDevice, getDeviceQuery, id)
}

func (db *DB) CreateDevice(ctx context.Context, device *models.Device) (*models.Device, error) {
	args, err := buildDeviceArgs(device)
	if err != nil {
		return nil, err
	}

	return queryOne(ctx, db.conn, "insert device", scanDevice, insertDeviceQuery, args...)
}

// UpdateDevice applies patch to the stored device and writes the result back.
func (db *DB) UpdateDevice(ctx context.Context, id int64, patch *models.DevicePatch) (*models.Device, error) {
	current, err := db.GetDevice(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch != nil {
		patch.Apply(current)
	}

	args, err := buildDeviceArgs(current)
	if err != nil {
		return nil, err
	}

	return queryOne(ctx, db.conn, fmt.Sprintf("device %d", id), scanDevice, updateDeviceQuery, append([]any{id}, args...)...)
}

func (db *DB) DeleteDevice(ctx context.Context, id int64) error {
	return db.execOne(ctx, fmt.Sprintf("device %d", id), deleteDeviceQuery, id)
}

func (db *DB) UpdateDeviceStatus(ctx context.Context, id int64, status models.DeviceStatus, seen time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var lastSeen *time.Time

	if !seen.IsZero() {
		t := seen.UTC()
		lastSeen = &t
	}

	return db.execOne(ctx, fmt.Sprintf("device %d", id), updateDeviceStatusQuery, id, string(status), lastSeen)
}

// buildDeviceArgs validates device and returns the positional arguments shared
// by the insert and update statements. Unset vendor, status and ssh port get
// the schema defaults.
func buildDeviceArgs(device *models.Device) ([]any, error) {
	if device == nil || device.IPAddress == "" {
		return nil, ErrIPAddressRequired
	}

	if device.DeviceType == "" {
		return nil, ErrDeviceTypeRequired
	}

	status := device.Status
	if status == "" {
		status = models.DeviceStatusUnknown
	}

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	vendor := device.Vendor
	if vendor == "" {
		vendor = "Cisco"
	}

	sshPort := device.SSHPort
	if sshPort == 0 {
		sshPort = 22
	}

	return []any{
		nullString(device.Hostname),
		device.IPAddress,
		device.SiteID,
		device.DeviceType,
		vendor,
		nullString(device.Model),
		nullString(device.OSVersion),
		nullString(device.SNMPVersion),
		nullString(device.SNMPCommunity),
		string(status),
		device.SSHEnabled,
		nullString(device.SSHUsername),
		sshPort,
	}, nil
}

func (db *DB) ListInterfaces(ctx context.Context) ([]models.Interface, error) {
	return queryList(ctx, db.conn, "interfaces", scanInterface, listInterfacesQuery)
}

func (db *DB) GetInterface(ctx context.Context, id int64) (*models.Interface, error) {
	return queryOne(ctx, db.conn, fmt.Sprintf("interface %d", id), scanInterface, getInterfaceQuery, id)
}

func (db *DB) ListDeviceInterfaces(ctx context.Context, deviceID int64) ([]models.Interface, error) {
	return queryList(ctx, db.conn, "device interfaces", scanInterface, listDeviceInterfacesQuery, deviceID)
}

func (db *DB) CreateInterface(ctx context.Context, iface *models.Interface) (*models.Interface, error) {
	if iface == nil {
		return nil, ErrInterfaceNil
	}

	if iface.DeviceID == 0 {
		return nil, ErrDeviceIDRequired
	}

	return queryOne(ctx, db.conn, "insert interface", scanInterface, insertInterfaceQuery,
		iface.DeviceID,
		nullString(iface.InterfaceName),
		nullString(iface.Description),
		nullString(iface.MACAddress),
		nullString(iface.Status),
		iface.SpeedBps,
		iface.MTU,
	)
}

func (db *DB) UpdateInterfaceState(ctx context.Context, id int64, status, mac string) error {
	return db.execOne(ctx, fmt.Sprintf("interface %d", id), updateInterfaceStateQuery, id, nullString(status), nullString(mac))
}

// nullString stores empty strings as NULL.
func nullString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
