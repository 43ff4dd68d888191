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
	"fmt"

	"github.com/carverauto/netwatch/pkg/events"
	"github.com/carverauto/netwatch/pkg/logger"
)

// Relay forwards immediate events to the members of the channel that owns
// the event type, outside the timer cadence.
type Relay struct {
	registry *Registry
	logger   logger.Logger
}

// NewRelay creates a relay over registry.
func NewRelay(registry *Registry, log logger.Logger) *Relay {
	return &Relay{registry: registry, logger: log}
}

// Run subscribes to bus and forwards events until ctx is cancelled.
func (r *Relay) Run(ctx context.Context, bus events.Bus) error {
	unsubscribe, err := bus.Subscribe(r.Handle)
	if err != nil {
		return fmt.Errorf("failed to subscribe to events: %w", err)
	}
	defer unsubscribe()

	r.logger.Info().Msg("Event relay started")

	<-ctx.Done()

	return nil
}

// Handle sends one event to its channel. Events for channels without
// members are dropped.
func (r *Relay) Handle(event events.Event) {
	channel := event.Type.Channel()
	if channel == "" {
		r.logger.Debug().Str("type", string(event.Type)).Msg("Ignoring event with no channel")

		return
	}

	members := r.registry.Members(channel)
	if len(members) == 0 {
		return
	}

	payload, err := json.Marshal(event.Message())
	if err != nil {
		r.logger.Error().Err(err).Str("type", string(event.Type)).Msg("Failed to marshal event")

		return
	}

	failures := deliver(members, payload, func(sub Subscriber, err error) {
		r.logger.Warn().
			Err(err).
			Str("type", string(event.Type)).
			Str("subscriber", sub.ID()).
			Msg("Failed to relay event")
	})

	recordSendFailures(context.Background(), channel, failures)
}
