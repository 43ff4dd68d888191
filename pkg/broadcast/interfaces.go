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

// Package broadcast pushes periodic stats, alerts and topology snapshots to
// WebSocket subscribers, one subscriber set per channel.
package broadcast

//go:generate mockgen -destination=mock_broadcast.go -package=broadcast github.com/carverauto/netwatch/pkg/broadcast SnapshotProvider,Subscriber

import (
	"context"
	"errors"

	"github.com/carverauto/netwatch/pkg/models"
)

var (
	ErrSubscriberClosed = errors.New("subscriber closed")
	ErrSendQueueFull    = errors.New("subscriber send queue full")
	errUnknownChannel   = errors.New("unknown channel")
)

// SnapshotProvider is the storage read side the scheduler depends on.
type SnapshotProvider interface {
	LatestStatsSnapshot(ctx context.Context) ([]models.InterfaceSnapshot, error)
	RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error)
	AllTopologyLinks(ctx context.Context) ([]models.TopologyLink, error)
}

// Subscriber is one connection registered on a channel. Send must not block;
// a full or closed queue is reported as an error.
type Subscriber interface {
	ID() string
	Send(payload []byte) error
}
