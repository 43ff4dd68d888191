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
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const waitFor = 2 * time.Second

func dial(t *testing.T, server *httptest.Server, channel string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?channel=" + channel

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func newTestServer(t *testing.T, registry *Registry, opts ...HandlerOption) (*Handler, *httptest.Server) {
	t.Helper()

	handler := NewHandler(registry, logger.NewTestLogger(), opts...)

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		handler.Shutdown()
		server.Close()
	})

	return handler, server
}

func TestAlertsSubscriberReceivesOneTick(t *testing.T) {
	provider := &memoryProvider{}
	registry := NewRegistry()
	mock := clock.NewMock()

	_, server := newTestServer(t, registry)
	conn := dial(t, server, "alerts")

	require.Eventually(t, func() bool {
		return registry.Counts()[models.ChannelAlerts] == 1
	}, waitFor, 10*time.Millisecond)

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	provider.addAlerts(
		models.Alert{ID: 1, AlertType: models.AlertTypeInterfaceDown, Severity: models.SeverityCritical, Timestamp: base},
		models.Alert{ID: 3, AlertType: models.AlertTypeMacChange, Severity: models.SeverityWarning, Timestamp: base.Add(2 * time.Minute)},
		models.Alert{ID: 2, AlertType: models.AlertTypeInterfaceDown, Severity: models.SeverityInfo, Timestamp: base.Add(time.Minute)},
	)

	s := NewScheduler(provider, registry, models.BroadcastConfig{}, logger.NewTestLogger(), WithClock(mock))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)
	mock.Add(10 * time.Second)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(waitFor)))

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg models.RawMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, models.MessageAlerts, msg.Type)

	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(msg.Data, &alerts))
	require.Len(t, alerts, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{alerts[0].ID, alerts[1].ID, alerts[2].ID})

	// nothing else arrives for this tick
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))

	_, _, err = conn.ReadMessage()

	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())

	assert.Equal(t, int32(1), provider.alertsCalls.Load())
	assert.Zero(t, provider.statsCalls.Load())
}

func TestUnknownChannelConnectionStaysOpen(t *testing.T) {
	registry := NewRegistry()
	handler, server := newTestServer(t, registry)

	dial(t, server, "metrics")

	require.Eventually(t, func() bool {
		return handler.ConnectionCount() == 1
	}, waitFor, 10*time.Millisecond)

	for _, n := range registry.Counts() {
		assert.Zero(t, n)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	registry := NewRegistry()
	handler, server := newTestServer(t, registry)

	conn := dial(t, server, "stats")

	require.Eventually(t, func() bool {
		return registry.Counts()[models.ChannelStats] == 1
	}, waitFor, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return registry.Counts()[models.ChannelStats] == 0 && handler.ConnectionCount() == 0
	}, waitFor, 10*time.Millisecond)
}

func TestShutdownClosesConnections(t *testing.T) {
	registry := NewRegistry()
	handler, server := newTestServer(t, registry)

	conn := dial(t, server, "topology")

	require.Eventually(t, func() bool {
		return registry.Counts()[models.ChannelTopology] == 1
	}, waitFor, 10*time.Millisecond)

	handler.Shutdown()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(waitFor)))

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
	assert.Zero(t, registry.Counts()[models.ChannelTopology])
}

func TestAllowedOriginsRejectsOthers(t *testing.T) {
	_, server := newTestServer(t, NewRegistry(), WithAllowedOrigins([]string{"http://dashboard.local"}))

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?channel=stats"

	header := http.Header{}
	header.Set("Origin", "http://evil.local")

	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_ = resp.Body.Close()
}

func TestClientSendAfterClose(t *testing.T) {
	c := newClient(nil, models.ChannelStats, 1, logger.NewTestLogger())

	require.NoError(t, c.Send([]byte("a")))
	assert.ErrorIs(t, c.Send([]byte("b")), ErrSendQueueFull)

	c.Close()
	c.Close()

	assert.ErrorIs(t, c.Send([]byte("c")), ErrSubscriberClosed)
}
