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
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

var errStorageDown = errors.New("storage unavailable")

func newTestScheduler(provider SnapshotProvider, registry *Registry, opts ...SchedulerOption) *Scheduler {
	return NewScheduler(provider, registry, models.BroadcastConfig{}, logger.NewTestLogger(), opts...)
}

func TestTickSkipsEmptyChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockSnapshotProvider(ctrl)

	s := newTestScheduler(provider, NewRegistry())

	for i := 0; i < 3; i++ {
		for _, ch := range models.Channels() {
			require.NoError(t, s.Tick(context.Background(), ch))
		}
	}
}

func TestTimersNeverFetchWithoutSubscribers(t *testing.T) {
	provider := &memoryProvider{}
	mock := clock.NewMock()

	s := newTestScheduler(provider, NewRegistry(), WithClock(mock))

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	for i := 0; i < 3; i++ {
		mock.Add(30 * time.Second)
	}

	cancel()
	s.Wait()

	assert.Zero(t, provider.topologyCalls.Load())
	assert.Zero(t, provider.alertsCalls.Load())
	assert.Zero(t, provider.statsCalls.Load())
}

func TestTickSendsIdenticalBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockSnapshotProvider(ctrl)

	links := []models.TopologyLink{
		{ID: 1, SrcDeviceID: 1, SrcInterface: "Gi0/1", DstDeviceID: 2, DstInterface: "Gi0/2"},
		{ID: 2, SrcDeviceID: 2, SrcInterface: "Gi0/3", DstDeviceID: 3, DstInterface: "Gi0/1"},
	}
	provider.EXPECT().AllTopologyLinks(gomock.Any()).Return(links, nil).Times(1)

	registry := NewRegistry()
	a := newRecordingSubscriber("a")
	b := newRecordingSubscriber("b")
	registry.Register(models.ChannelTopology, a)
	registry.Register(models.ChannelTopology, b)

	require.NoError(t, newTestScheduler(provider, registry).Tick(context.Background(), models.ChannelTopology))

	require.Len(t, a.received(), 1)
	require.Len(t, b.received(), 1)
	assert.Equal(t, a.received()[0], b.received()[0])

	var msg models.RawMessage
	require.NoError(t, json.Unmarshal(a.received()[0], &msg))
	assert.Equal(t, models.MessageTopology, msg.Type)

	var decoded []models.TopologyLink
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	assert.Len(t, decoded, 2)
}

func TestTickIsolatesSendFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockSnapshotProvider(ctrl)
	provider.EXPECT().LatestStatsSnapshot(gomock.Any()).Return([]models.InterfaceSnapshot{
		{Interface: models.Interface{ID: 1, InterfaceName: "Gi0/1"}},
	}, nil).Times(2)

	broken := NewMockSubscriber(ctrl)
	broken.EXPECT().ID().Return("broken").AnyTimes()
	broken.EXPECT().Send(gomock.Any()).Return(ErrSubscriberClosed).Times(2)

	healthy := newRecordingSubscriber("healthy")

	registry := NewRegistry()
	registry.Register(models.ChannelStats, broken)
	registry.Register(models.ChannelStats, healthy)

	s := newTestScheduler(provider, registry)

	require.NoError(t, s.Tick(context.Background(), models.ChannelStats))
	require.NoError(t, s.Tick(context.Background(), models.ChannelStats))

	assert.Len(t, healthy.received(), 2)
}

func TestTickAbandonedOnProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockSnapshotProvider(ctrl)

	gomock.InOrder(
		provider.EXPECT().RecentAlerts(gomock.Any(), models.DefaultAlertLimit).Return(nil, errStorageDown),
		provider.EXPECT().RecentAlerts(gomock.Any(), models.DefaultAlertLimit).Return([]models.Alert{{ID: 1}}, nil),
	)

	registry := NewRegistry()
	sub := newRecordingSubscriber("a")
	registry.Register(models.ChannelAlerts, sub)

	s := newTestScheduler(provider, registry)

	err := s.Tick(context.Background(), models.ChannelAlerts)
	require.ErrorIs(t, err, errStorageDown)
	assert.Empty(t, sub.received())

	require.NoError(t, s.Tick(context.Background(), models.ChannelAlerts))
	assert.Len(t, sub.received(), 1)
}

func TestTickEncodesEmptySnapshotAsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockSnapshotProvider(ctrl)
	provider.EXPECT().LatestStatsSnapshot(gomock.Any()).Return(nil, nil)

	registry := NewRegistry()
	sub := newRecordingSubscriber("a")
	registry.Register(models.ChannelStats, sub)

	require.NoError(t, newTestScheduler(provider, registry).Tick(context.Background(), models.ChannelStats))

	require.Len(t, sub.received(), 1)
	assert.JSONEq(t, `{"type":"stats","data":[]}`, string(sub.received()[0]))
}

func TestTickStatsSnapshotKeepsNullStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockSnapshotProvider(ctrl)

	sampled := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	provider.EXPECT().LatestStatsSnapshot(gomock.Any()).Return([]models.InterfaceSnapshot{
		{Interface: models.Interface{ID: 1, DeviceID: 1, InterfaceName: "Gi0/1"},
			Stats: &models.InterfaceStat{ID: 5, InterfaceID: 1, Timestamp: sampled, InBps: 800, OutBps: 400}},
		{Interface: models.Interface{ID: 2, DeviceID: 1, InterfaceName: "Gi0/2"}},
	}, nil)

	registry := NewRegistry()
	sub := newRecordingSubscriber("a")
	registry.Register(models.ChannelStats, sub)

	require.NoError(t, newTestScheduler(provider, registry).Tick(context.Background(), models.ChannelStats))

	var msg models.RawMessage
	require.NoError(t, json.Unmarshal(sub.received()[0], &msg))

	var rows []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(msg.Data, &rows))
	require.Len(t, rows, 2)
	assert.JSONEq(t, "null", string(rows[1]["stats"]))
	assert.Contains(t, string(rows[0]["stats"]), `"inBps":800`)
}

func TestTickHonorsAlertLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockSnapshotProvider(ctrl)
	provider.EXPECT().RecentAlerts(gomock.Any(), 3).Return([]models.Alert{}, nil)

	registry := NewRegistry()
	registry.Register(models.ChannelAlerts, newRecordingSubscriber("a"))

	s := NewScheduler(provider, registry, models.BroadcastConfig{AlertLimit: 3}, logger.NewTestLogger())
	require.NoError(t, s.Tick(context.Background(), models.ChannelAlerts))
}

func TestTickUnknownChannel(t *testing.T) {
	s := newTestScheduler(&memoryProvider{}, NewRegistry())

	assert.NoError(t, s.Tick(context.Background(), "metrics"))
}

func TestSchedulerIntervals(t *testing.T) {
	s := newTestScheduler(&memoryProvider{}, NewRegistry())

	assert.Equal(t, 5*time.Second, s.Interval(models.ChannelStats))
	assert.Equal(t, 10*time.Second, s.Interval(models.ChannelAlerts))
	assert.Equal(t, 30*time.Second, s.Interval(models.ChannelTopology))
	assert.Zero(t, s.Interval("metrics"))
}

func TestTimersFireIndependently(t *testing.T) {
	provider := &memoryProvider{}
	mock := clock.NewMock()

	registry := NewRegistry()
	stats := newRecordingSubscriber("stats")
	topology := newRecordingSubscriber("topology")
	registry.Register(models.ChannelStats, stats)
	registry.Register(models.ChannelTopology, topology)

	s := newTestScheduler(provider, registry, WithClock(mock))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)

	for i := 0; i < 6; i++ {
		mock.Add(5 * time.Second)

		want := i + 1
		require.Eventually(t, func() bool {
			return len(stats.received()) == want
		}, time.Second, 5*time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(topology.received()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Zero(t, provider.alertsCalls.Load())
}
