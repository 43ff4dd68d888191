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

package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent(models.MessageDeviceUpdate, models.DeviceStatusUpdate{ID: 4, Status: models.DeviceStatusDown})
	require.NoError(t, err)

	assert.Equal(t, specVersion, event.SpecVersion)
	assert.Equal(t, eventSource, event.Source)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Time.IsZero())
	assert.JSONEq(t, `{"id":4,"status":"down"}`, string(event.Data))

	frame, err := json.Marshal(event.Message())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"device_update","data":{"id":4,"status":"down"}}`, string(frame))
}

func TestNewEventRejectsScheduledTypes(t *testing.T) {
	_, err := NewEvent(models.MessageStats, nil)
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestLocalBusDelivery(t *testing.T) {
	bus := NewLocalBus()

	var first, second []Event

	unsubscribe, err := bus.Subscribe(func(e Event) { first = append(first, e) })
	require.NoError(t, err)

	_, err = bus.Subscribe(func(e Event) { second = append(second, e) })
	require.NoError(t, err)

	alert := models.Alert{ID: 12, AlertType: models.AlertTypeInterfaceDown, Severity: models.SeverityCritical}
	require.NoError(t, bus.Publish(context.Background(), models.MessageNewAlert, alert))

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, models.MessageNewAlert, first[0].Type)
	assert.Equal(t, first[0].ID, second[0].ID)

	unsubscribe()
	require.NoError(t, bus.Publish(context.Background(), models.MessageMacChange, models.MacChangeLog{ID: 1}))

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestLocalBusClosed(t *testing.T) {
	bus := NewLocalBus()
	require.NoError(t, bus.Close())

	err := bus.Publish(context.Background(), models.MessageNewAlert, models.Alert{})
	require.ErrorIs(t, err, ErrBusClosed)

	_, err = bus.Subscribe(func(Event) {})
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestDecodeEvent(t *testing.T) {
	event, err := NewEvent(models.MessageMacChange, models.MacChangeLog{ID: 3, DeviceID: 1, OldMAC: "aa", NewMAC: "bb"})
	require.NoError(t, err)

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := decodeEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, models.MessageMacChange, decoded.Type)
	assert.JSONEq(t, string(event.Data), string(decoded.Data))

	_, err = decodeEvent([]byte(`{"type":"heartbeat","data":{}}`))
	require.ErrorIs(t, err, ErrUnsupportedEvent)

	_, err = decodeEvent([]byte(`{`))
	assert.Error(t, err)
}

func TestSubjectFor(t *testing.T) {
	assert.Equal(t, "netwatch.events.new_alert", subjectFor("netwatch.events", models.MessageNewAlert))
}

func TestNewFallsBackToLocalBus(t *testing.T) {
	bus, err := New(context.Background(), nil, logger.NewTestLogger())
	require.NoError(t, err)
	assert.IsType(t, &LocalBus{}, bus)

	bus, err = New(context.Background(), &models.EventsConfig{Enabled: false}, logger.NewTestLogger())
	require.NoError(t, err)
	assert.IsType(t, &LocalBus{}, bus)
}

func TestNewNATSBusRequiresURL(t *testing.T) {
	_, err := NewNATSBus(context.Background(), &models.EventsConfig{Enabled: true}, logger.NewTestLogger())
	assert.ErrorIs(t, err, errNATSURLRequired)
}
