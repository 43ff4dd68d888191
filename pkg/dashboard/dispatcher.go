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

package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

var (
	errUnknownMessageType = errors.New("unknown message type")
	errEmptyData          = errors.New("message has no data")
)

// Dispatcher decodes pushed envelopes and applies them to a Store.
type Dispatcher struct {
	store  *Store
	logger logger.Logger
}

// NewDispatcher returns a dispatcher writing into store.
func NewDispatcher(store *Store, log logger.Logger) *Dispatcher {
	return &Dispatcher{store: store, logger: log}
}

// Dispatch applies one raw envelope. Unknown message types are logged and
// reported as an error without touching the store.
func (d *Dispatcher) Dispatch(payload []byte) error {
	var msg models.RawMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("failed to decode envelope: %w", err)
	}

	return d.Apply(msg)
}

// Apply routes a decoded envelope to the matching store operation.
func (d *Dispatcher) Apply(msg models.RawMessage) error {
	switch msg.Type {
	case models.MessageStats:
		var snapshot []models.InterfaceSnapshot
		if err := decodeData(msg, &snapshot); err != nil {
			return err
		}

		d.store.ApplyStatsSnapshot(snapshot)
	case models.MessageAlerts:
		var alerts []models.Alert
		if err := decodeData(msg, &alerts); err != nil {
			return err
		}

		d.store.ReplaceAlerts(alerts)
	case models.MessageTopology:
		var links []models.TopologyLink
		if err := decodeData(msg, &links); err != nil {
			return err
		}

		d.store.ReplaceTopologyLinks(links)
	case models.MessageDeviceUpdate:
		var update models.DeviceStatusUpdate
		if err := decodeData(msg, &update); err != nil {
			return err
		}

		if !d.store.ApplyDeviceStatusUpdate(update.ID, update.Status) {
			d.logger.Debug().Int64("device_id", update.ID).Msg("Dropped status update for unknown device")
		}
	case models.MessageNewAlert:
		var alert models.Alert
		if err := decodeData(msg, &alert); err != nil {
			return err
		}

		d.store.AppendAlert(alert)
	case models.MessageMacChange:
		var change models.MacChangeLog
		if err := decodeData(msg, &change); err != nil {
			return err
		}

		d.store.RecordAnomalyEvent(change)
	default:
		d.logger.Warn().Str("type", string(msg.Type)).Msg("Ignoring message of unknown type")

		return fmt.Errorf("%w: %q", errUnknownMessageType, msg.Type)
	}

	return nil
}

func decodeData(msg models.RawMessage, dst interface{}) error {
	if len(msg.Data) == 0 {
		return fmt.Errorf("%w: %s", errEmptyData, msg.Type)
	}

	if err := json.Unmarshal(msg.Data, dst); err != nil {
		return fmt.Errorf("failed to decode %s data: %w", msg.Type, err)
	}

	return nil
}
