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
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

func TestWebsocketURL(t *testing.T) {
	base, err := url.Parse("https://core.example.com:8443/base?x=1")
	require.NoError(t, err)

	f := NewFeed(base, nil, logger.NewTestLogger())
	assert.Equal(t, "wss://core.example.com:8443/ws?channel=alerts", f.URL(models.ChannelAlerts))

	base, err = url.Parse("http://localhost:5000")
	require.NoError(t, err)

	f = NewFeed(base, nil, logger.NewTestLogger())
	assert.Equal(t, "ws://localhost:5000/ws?channel=stats", f.URL(models.ChannelStats))
}

func TestFeedDispatchesPerChannel(t *testing.T) {
	var dials atomic.Int32

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		dials.Add(1)

		var msg string

		switch models.Channel(r.URL.Query().Get("channel")) {
		case models.ChannelAlerts:
			msg = `{"type":"new_alert","data":{"id":11,"severity":"critical","message":"down"}}`
		case models.ChannelTopology:
			msg = `{"type":"device_update","data":{"id":2,"status":"up"}}`
		case models.ChannelStats:
			msg = `{"type":"mac_change","data":{"id":1,"deviceId":3,"oldMac":"aa","newMac":"bb"}}`
		}

		_ = conn.WriteMessage(websocket.TextMessage, []byte(msg))

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)

	store := NewStore()
	store.ReplaceDevices(sampleDevices())

	feed := NewFeed(base, NewDispatcher(store, logger.NewTestLogger()), logger.NewTestLogger(),
		WithReconnectDelay(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- feed.Run(ctx) }()

	require.Eventually(t, func() bool {
		st := store.Snapshot()

		return len(st.Alerts) == 1 && st.Devices[1].Status == models.DeviceStatusUp && len(st.Anomalies[3]) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.True(t, feed.Connected(models.ChannelAlerts))
	assert.Equal(t, int32(3), dials.Load())

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not stop")
	}

	assert.False(t, feed.Connected(models.ChannelAlerts))
}

func TestFeedRedialsAfterDrop(t *testing.T) {
	var dials atomic.Int32

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		dials.Add(1)
		_ = conn.Close()
	}))
	t.Cleanup(server.Close)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)

	feed := NewFeed(base, NewDispatcher(NewStore(), logger.NewTestLogger()), logger.NewTestLogger(),
		WithChannels(models.ChannelTopology), WithReconnectDelay(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() { done <- feed.Run(ctx) }()

	require.Eventually(t, func() bool { return dials.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
