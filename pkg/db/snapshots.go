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

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	snapshotSelect = `
		SELECT i.id, i.device_id, COALESCE(i.interface_name, ''), COALESCE(i.description, ''),
			COALESCE(i.mac_address, ''), COALESCE(i.status, ''), COALESCE(i.speed_bps, 0), COALESCE(i.mtu, 0),
			s.id, s.timestamp, COALESCE(s.in_bps, 0), COALESCE(s.out_bps, 0)
		FROM interfaces i
		LEFT JOIN LATERAL (
			SELECT id, timestamp, in_bps, out_bps
			FROM interface_stats
			WHERE interface_id = i.id
			ORDER BY timestamp DESC, id DESC
			LIMIT 1
		) s ON true`

	latestStatsQuery       = snapshotSelect + ` ORDER BY i.id`
	latestDeviceStatsQuery = snapshotSelect + ` WHERE i.device_id = $1 ORDER BY i.id`

	recentAlertsQuery = `SELECT ` + alertColumns + `
		FROM alerts
		ORDER BY timestamp DESC, id DESC
		LIMIT $1`

	allLinksQuery = `SELECT ` + linkColumns + ` FROM topology_links ORDER BY id`
)

// LatestStatsSnapshot pairs every interface with its newest sample.
func (db *DB) LatestStatsSnapshot(ctx context.Context) ([]models.InterfaceSnapshot, error) {
	return queryList(ctx, db.conn, "latest stats", scanSnapshot, latestStatsQuery)
}

// RecentAlerts returns the limit newest alerts, newest first.
func (db *DB) RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = models.DefaultAlertLimit
	}

	return queryList(ctx, db.conn, "recent alerts", scanAlert, recentAlertsQuery, limit)
}

// AllTopologyLinks returns every stored link ordered by id.
func (db *DB) AllTopologyLinks(ctx context.Context) ([]models.TopologyLink, error) {
	return queryList(ctx, db.conn, "topology links", scanLink, allLinksQuery)
}
