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
	"sort"
	"sync"
	"sync/atomic"

	"github.com/carverauto/netwatch/pkg/models"
)

// recordingSubscriber keeps every payload it is sent.
type recordingSubscriber struct {
	id string

	mu       sync.Mutex
	payloads [][]byte
}

func newRecordingSubscriber(id string) *recordingSubscriber {
	return &recordingSubscriber{id: id}
}

func (r *recordingSubscriber) ID() string { return r.id }

func (r *recordingSubscriber) Send(payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payloads = append(r.payloads, payload)

	return nil
}

func (r *recordingSubscriber) received() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]byte, len(r.payloads))
	copy(out, r.payloads)

	return out
}

// memoryProvider is an in-memory snapshot provider that counts its calls.
type memoryProvider struct {
	mu     sync.Mutex
	stats  []models.InterfaceSnapshot
	alerts []models.Alert
	links  []models.TopologyLink

	statsCalls    atomic.Int32
	alertsCalls   atomic.Int32
	topologyCalls atomic.Int32
}

func (p *memoryProvider) addAlerts(alerts ...models.Alert) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.alerts = append(p.alerts, alerts...)
}

func (p *memoryProvider) LatestStatsSnapshot(context.Context) ([]models.InterfaceSnapshot, error) {
	p.statsCalls.Add(1)

	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]models.InterfaceSnapshot(nil), p.stats...), nil
}

func (p *memoryProvider) RecentAlerts(_ context.Context, limit int) ([]models.Alert, error) {
	p.alertsCalls.Add(1)

	p.mu.Lock()
	defer p.mu.Unlock()

	alerts := append([]models.Alert(nil), p.alerts...)
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})

	if len(alerts) > limit {
		alerts = alerts[:limit]
	}

	return alerts, nil
}

func (p *memoryProvider) AllTopologyLinks(context.Context) ([]models.TopologyLink, error) {
	p.topologyCalls.Add(1)

	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]models.TopologyLink(nil), p.links...), nil
}
