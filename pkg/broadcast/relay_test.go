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

package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/events"
	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

func TestRelayRoutesEventsToOwningChannel(t *testing.T) {
	registry := NewRegistry()
	alerts := newRecordingSubscriber("alerts")
	topology := newRecordingSubscriber("topology")
	stats := newRecordingSubscriber("stats")

	registry.Register(models.ChannelAlerts, alerts)
	registry.Register(models.ChannelTopology, topology)
	registry.Register(models.ChannelStats, stats)

	relay := NewRelay(registry, logger.NewTestLogger())

	event, err := events.NewEvent(models.MessageNewAlert, models.Alert{ID: 7, Severity: models.SeverityCritical})
	require.NoError(t, err)
	relay.Handle(event)

	event, err = events.NewEvent(models.MessageDeviceUpdate, models.DeviceStatusUpdate{ID: 2, Status: models.DeviceStatusDown})
	require.NoError(t, err)
	relay.Handle(event)

	require.Len(t, alerts.received(), 1)
	assert.JSONEq(t, `{"type":"new_alert","data":{"id":7,"deviceId":null,"interfaceId":null,"alertType":"",
		"severity":"critical","message":"","timestamp":"0001-01-01T00:00:00Z","acknowledged":false}}`,
		string(alerts.received()[0]))

	require.Len(t, topology.received(), 1)
	assert.JSONEq(t, `{"type":"device_update","data":{"id":2,"status":"down"}}`, string(topology.received()[0]))

	assert.Empty(t, stats.received())
}

func TestRelayIgnoresUnknownTypes(t *testing.T) {
	registry := NewRegistry()
	sub := newRecordingSubscriber("a")
	registry.Register(models.ChannelStats, sub)

	NewRelay(registry, logger.NewTestLogger()).Handle(events.Event{Type: "heartbeat"})

	assert.Empty(t, sub.received())
}

func TestRelayRunForwardsBusEvents(t *testing.T) {
	registry := NewRegistry()
	sub := newRecordingSubscriber("a")
	registry.Register(models.ChannelStats, sub)

	bus := events.NewLocalBus()
	relay := NewRelay(registry, logger.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- relay.Run(ctx, bus) }()

	change := models.MacChangeLog{ID: 1, DeviceID: 4, InterfaceName: "Gi0/1", OldMAC: "aa:aa", NewMAC: "bb:bb"}

	require.Eventually(t, func() bool {
		require.NoError(t, bus.Publish(ctx, models.MessageMacChange, change))

		return len(sub.received()) > 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	n := len(sub.received())
	require.NoError(t, bus.Publish(context.Background(), models.MessageMacChange, change))
	assert.Len(t, sub.received(), n)
}
