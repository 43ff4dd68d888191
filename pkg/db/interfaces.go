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

//go:generate mockgen -destination=mock_db.go -package=db github.com/carverauto/netwatch/pkg/db Service

import (
	"context"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// SnapshotReader is the read side used by the broadcast scheduler. Each call
// is an independent point-in-time read; nothing is cached.
type SnapshotReader interface {
	// LatestStatsSnapshot pairs every interface with its newest sample, or nil.
	LatestStatsSnapshot(ctx context.Context) ([]models.InterfaceSnapshot, error)
	// RecentAlerts returns at most limit alerts, newest first.
	RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error)
	AllTopologyLinks(ctx context.Context) ([]models.TopologyLink, error)
}

// Service represents all netwatch database operations.
type Service interface {
	SnapshotReader

	Close() error
	Ping(ctx context.Context) error

	// Site operations.

	ListSites(ctx context.Context) ([]models.Site, error)
	GetSite(ctx context.Context, id int64) (*models.Site, error)
	CreateSite(ctx context.Context, site *models.Site) (*models.Site, error)
	UpdateSite(ctx context.Context, site *models.Site) (*models.Site, error)
	DeleteSite(ctx context.Context, id int64) error

	// Device operations.

	ListDevices(ctx context.Context) ([]models.Device, error)
	GetDevice(ctx context.Context, id int64) (*models.Device, error)
	CreateDevice(ctx context.Context, device *models.Device) (*models.Device, error)
	UpdateDevice(ctx context.Context, id int64, patch *models.DevicePatch) (*models.Device, error)
	DeleteDevice(ctx context.Context, id int64) error
	// UpdateDeviceStatus sets status and last_seen. A zero seen clears last_seen.
	UpdateDeviceStatus(ctx context.Context, id int64, status models.DeviceStatus, seen time.Time) error

	// Interface operations.

	ListInterfaces(ctx context.Context) ([]models.Interface, error)
	GetInterface(ctx context.Context, id int64) (*models.Interface, error)
	ListDeviceInterfaces(ctx context.Context, deviceID int64) ([]models.Interface, error)
	CreateInterface(ctx context.Context, iface *models.Interface) (*models.Interface, error)
	UpdateInterfaceState(ctx context.Context, id int64, status, mac string) error

	// Statistics.

	InsertInterfaceStat(ctx context.Context, stat *models.InterfaceStat) (*models.InterfaceStat, error)
	InterfaceStats(ctx context.Context, interfaceID int64, limit int) ([]models.InterfaceStat, error)
	LatestInterfaceStat(ctx context.Context, interfaceID int64) (*models.InterfaceStat, error)
	LatestDeviceStats(ctx context.Context, deviceID int64) ([]models.InterfaceSnapshot, error)
	DeviceStatsSeries(ctx context.Context, deviceID int64, limit int) ([]models.InterfaceStatsSeries, error)

	// Alerts.

	ListAlerts(ctx context.Context) ([]models.Alert, error)
	ListDeviceAlerts(ctx context.Context, deviceID int64) ([]models.Alert, error)
	ListInterfaceAlerts(ctx context.Context, interfaceID int64) ([]models.Alert, error)
	CreateAlert(ctx context.Context, alert *models.Alert) (*models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id int64) (*models.Alert, error)

	// Topology.

	ListDeviceTopology(ctx context.Context, deviceID int64) ([]models.TopologyLink, error)
	CreateTopologyLink(ctx context.Context, link *models.TopologyLink) (*models.TopologyLink, error)

	// MAC change log.

	ListMacChanges(ctx context.Context) ([]models.MacChangeLog, error)
	ListDeviceMacChanges(ctx context.Context, deviceID int64) ([]models.MacChangeLog, error)
	CreateMacChange(ctx context.Context, entry *models.MacChangeLog) (*models.MacChangeLog, error)
}
