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
	"sync"

	"github.com/carverauto/netwatch/pkg/models"
)

// Registry maps each fixed channel to its set of subscribers, keyed by ID.
type Registry struct {
	mu       sync.RWMutex
	channels map[models.Channel]map[string]Subscriber
}

// NewRegistry creates a registry holding the stats, alerts and topology channels.
func NewRegistry() *Registry {
	channels := make(map[models.Channel]map[string]Subscriber, len(models.Channels()))
	for _, ch := range models.Channels() {
		channels[ch] = make(map[string]Subscriber)
	}

	return &Registry{channels: channels}
}

// Register adds sub to channel and reports whether the channel exists.
// Unknown channels are left untouched.
func (r *Registry) Register(channel models.Channel, sub Subscriber) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.channels[channel]
	if !ok {
		return false
	}

	set[sub.ID()] = sub

	return true
}

// Unregister removes sub from channel. Removing an absent subscriber is a no-op.
func (r *Registry) Unregister(channel models.Channel, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.channels[channel]; ok {
		delete(set, sub.ID())
	}
}

// Members returns a snapshot of the subscribers on channel.
func (r *Registry) Members(channel models.Channel) []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.channels[channel]
	if len(set) == 0 {
		return nil
	}

	members := make([]Subscriber, 0, len(set))
	for _, sub := range set {
		members = append(members, sub)
	}

	return members
}

// Counts returns the number of subscribers per channel.
func (r *Registry) Counts() map[models.Channel]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.Channel]int, len(r.channels))
	for ch, set := range r.channels {
		counts[ch] = len(set)
	}

	return counts
}
