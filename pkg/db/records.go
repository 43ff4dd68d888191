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

// DefaultStatsHistory is how many samples per interface the history reads return.
const DefaultStatsHistory = 100

const (
	insertStatQuery = `INSERT INTO interface_stats (interface_id, timestamp, in_bps, out_bps)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + statColumns
	interfaceStatsQuery = `SELECT ` + statColumns + `
		FROM interface_stats
		WHERE interface_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT $2`
	deviceStatsSeriesQuery = `SELECT ` + statColumns + `
		FROM (
			SELECT s.*, row_number() OVER (PARTITION BY s.interface_id ORDER BY s.timestamp DESC, s.id DESC) AS rn
			FROM interface_stats s
			JOIN interfaces i ON i.id = s.interface_id
			WHERE i.device_id = $1
		) ranked
		WHERE rn <= $2
		ORDER BY interface_id, timestamp DESC, id DESC`

	listAlertsQuery          = `SELECT ` + alertColumns + ` FROM alerts ORDER BY timestamp DESC, id DESC`
	listDeviceAlertsQuery    = `SELECT ` + alertColumns + ` FROM alerts WHERE device_id = $1 ORDER BY timestamp DESC, id DESC`
	listInterfaceAlertsQuery = `SELECT ` + alertColumns + ` FROM alerts WHERE interface_id = $1 ORDER BY timestamp DESC, id DESC`
	insertAlertQuery         = `INSERT INTO alerts (device_id, interface_id, alert_type, severity, message, timestamp, acknowledged)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + alertColumns
	acknowledgeAlertQuery = `UPDATE alerts SET acknowledged = true WHERE id = $1 RETURNING ` + alertColumns

	deviceLinksQuery = `SELECT ` + linkColumns + ` FROM topology_links WHERE src_device_id = $1 ORDER BY id`
	insertLinkQuery  = `INSERT INTO topology_links (src_device_id, src_interface, dst_device_id, dst_interface, last_seen)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + linkColumns

	listMacChangesQuery       = `SELECT ` + macChangeColumns + ` FROM mac_change_logs ORDER BY timestamp DESC, id DESC`
	listDeviceMacChangesQuery = `SELECT ` + macChangeColumns + ` FROM mac_change_logs WHERE device_id = $1 ORDER BY timestamp DESC, id DESC`
	insertMacChangeQuery      = `INSERT INTO mac_change_logs (device_id, interface_id, interface_name, old_mac, new_mac, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + macChangeColumns
)

func (db *DB) InsertInterfaceStat(ctx context.Context, stat *models.InterfaceStat) (*models.InterfaceStat, error) {
	if stat == nil {
		return nil, ErrStatNil
	}

	return queryOne(ctx, db.conn, "insert interface stat", scanStat, insertStatQuery,
		stat.InterfaceID, timestampOrNow(stat.Timestamp), stat.InBps, stat.OutBps)
}

// InterfaceStats returns up to limit samples for one interface, newest first.
func (db *DB) InterfaceStats(ctx context.Context, interfaceID int64, limit int) ([]models.InterfaceStat, error) {
	if limit <= 0 {
		limit = DefaultStatsHistory
	}

	return queryList(ctx, db.conn, "interface stats", scanStat, interfaceStatsQuery, interfaceID, limit)
}

func (db *DB) LatestInterfaceStat(ctx context.Context, interfaceID int64) (*models.InterfaceStat, error) {
	stats, err := db.InterfaceStats(ctx, interfaceID, 1)
	if err != nil {
		return nil, err
	}

	if len(stats) == 0 {
		return nil, fmt.Errorf("stats for interface %d: %w", interfaceID, ErrNotFound)
	}

	return &stats[0], nil
}

func (db *DB) LatestDeviceStats(ctx context.Context, deviceID int64) ([]models.InterfaceSnapshot, error) {
	return queryList(ctx, db.conn, "device latest stats", scanSnapshot, latestDeviceStatsQuery, deviceID)
}

// DeviceStatsSeries returns every interface of the device with up to limit
// samples each. Interfaces without samples get an empty series.
func (db *DB) DeviceStatsSeries(ctx context.Context, deviceID int64, limit int) ([]models.InterfaceStatsSeries, error) {
	if limit <= 0 {
		limit = DefaultStatsHistory
	}

	ifaces, err := db.ListDeviceInterfaces(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	stats, err := queryList(ctx, db.conn, "device stats", scanStat, deviceStatsSeriesQuery, deviceID, limit)
	if err != nil {
		return nil, err
	}

	return groupStatsByInterface(ifaces, stats), nil
}

func groupStatsByInterface(ifaces []models.Interface, stats []models.InterfaceStat) []models.InterfaceStatsSeries {
	byInterface := make(map[int64][]models.InterfaceStat, len(ifaces))
	for _, s := range stats {
		byInterface[s.InterfaceID] = append(byInterface[s.InterfaceID], s)
	}

	series := make([]models.InterfaceStatsSeries, 0, len(ifaces))

	for _, iface := range ifaces {
		samples := byInterface[iface.ID]
		if samples == nil {
			samples = []models.InterfaceStat{}
		}

		series = append(series, models.InterfaceStatsSeries{Interface: iface, Stats: samples})
	}

	return series
}

func (db *DB) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	return queryList(ctx, db.conn, "alerts", scanAlert, listAlertsQuery)
}

func (db *DB) ListDeviceAlerts(ctx context.Context, deviceID int64) ([]models.Alert, error) {
	return queryList(ctx, db.conn, "device alerts", scanAlert, listDeviceAlertsQuery, deviceID)
}

func (db *DB) ListInterfaceAlerts(ctx context.Context, interfaceID int64) ([]models.Alert, error) {
	return queryList(ctx, db.conn, "interface alerts", scanAlert, listInterfaceAlertsQuery, interfaceID)
}

func (db *DB) CreateAlert(ctx context.Context, alert *models.Alert) (*models.Alert, error) {
	args, err := buildAlertArgs(alert)
	if err != nil {
		return nil, err
	}

	return queryOne(ctx, db.conn, "insert alert", scanAlert, insertAlertQuery, args...)
}

// AcknowledgeAlert flags the alert; acknowledging twice is not an error.
func (db *DB) AcknowledgeAlert(ctx context.Context, id int64) (*models.Alert, error) {
	return queryOne(ctx, db.conn, fmt.Sprintf("alert %d", id), scanAlert, acknowledgeAlertQuery, id)
}

func buildAlertArgs(alert *models.Alert) ([]any, error) {
	if alert == nil {
		return nil, ErrInvalidSeverity
	}

	severity := alert.Severity
	if severity == "" {
		severity = models.SeverityInfo
	}

	if !severity.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeverity, severity)
	}

	return []any{
		alert.DeviceID,
		alert.InterfaceID,
		nullString(alert.AlertType),
		string(severity),
		nullString(alert.Message),
		timestampOrNow(alert.Timestamp),
		alert.Acknowledged,
	}, nil
}

func (db *DB) ListDeviceTopology(ctx context.Context, deviceID int64) ([]models.TopologyLink, error) {
	return queryList(ctx, db.conn, "device topology", scanLink, deviceLinksQuery, deviceID)
}

func (db *DB) CreateTopologyLink(ctx context.Context, link *models.TopologyLink) (*models.TopologyLink, error) {
	if link == nil || link.SrcDeviceID == 0 || link.DstDeviceID == 0 {
		return nil, ErrDeviceIDRequired
	}

	return queryOne(ctx, db.conn, "insert topology link", scanLink, insertLinkQuery,
		link.SrcDeviceID, nullString(link.SrcInterface), link.DstDeviceID, nullString(link.DstInterface),
		timestampOrNow(link.LastSeen))
}

func (db *DB) ListMacChanges(ctx context.Context) ([]models.MacChangeLog, error) {
	return queryList(ctx, db.conn, "mac changes", scanMacChange, listMacChangesQuery)
}

// ListDeviceMacChanges returns ErrNotFound when the device itself is unknown.
func (db *DB) ListDeviceMacChanges(ctx context.Context, deviceID int64) ([]models.MacChangeLog, error) {
	if _, err := db.GetDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	return queryList(ctx, db.conn, "device mac changes", scanMacChange, listDeviceMacChangesQuery, deviceID)
}

func (db *DB) CreateMacChange(ctx context.Context, entry *models.MacChangeLog) (*models.MacChangeLog, error) {
	args, err := buildMacChangeArgs(entry)
	if err != nil {
		return nil, err
	}

	return queryOne(ctx, db.conn, "insert mac change", scanMacChange, insertMacChangeQuery, args...)
}

func buildMacChangeArgs(entry *models.MacChangeLog) ([]any, error) {
	if entry == nil || entry.DeviceID == 0 {
		return nil, ErrDeviceIDRequired
	}

	if entry.OldMAC == "" || entry.NewMAC == "" {
		return nil, ErrMACRequired
	}

	return []any{
		entry.DeviceID,
		entry.InterfaceID,
		nullString(entry.InterfaceName),
		entry.OldMAC,
		entry.NewMAC,
		timestampOrNow(entry.Timestamp),
	}, nil
}

func timestampOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}

	return t.UTC()
}
