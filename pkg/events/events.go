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

// Package events carries immediate device, alert and MAC change events from
// the producers (REST handlers, simulator) to the broadcaster.
package events

//go:generate mockgen -destination=mock_events.go -package=events github.com/carverauto/netwatch/pkg/events Publisher,Bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	specVersion = "1.0"
	eventSource = "netwatch"
)

var (
	ErrBusClosed        = errors.New("event bus closed")
	ErrUnsupportedEvent = errors.New("unsupported event type")
)

// Event is a CloudEvents-shaped envelope around one immediate update.
type Event struct {
	SpecVersion string             `json:"specversion"`
	ID          string             `json:"id"`
	Source      string             `json:"source"`
	Type        models.MessageType `json:"type"`
	Time        time.Time          `json:"time"`
	Data        json.RawMessage    `json:"data"`
}

// Handler receives events. Handlers run on the publishing goroutine for the
// local bus and on the NATS delivery goroutine otherwise, so they must not block.
type Handler func(Event)

// Publisher emits immediate events.
type Publisher interface {
	Publish(ctx context.Context, msgType models.MessageType, data interface{}) error
}

// Bus is a Publisher that can also be subscribed to.
type Bus interface {
	Publisher
	Subscribe(handler Handler) (func(), error)
	Close() error
}

// NewEvent wraps data for msgType. Only the immediate event types are accepted.
func NewEvent(msgType models.MessageType, data interface{}) (Event, error) {
	switch msgType {
	case models.MessageDeviceUpdate, models.MessageNewAlert, models.MessageMacChange:
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnsupportedEvent, msgType)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s event: %w", msgType, err)
	}

	return Event{
		SpecVersion: specVersion,
		ID:          uuid.New().String(),
		Source:      eventSource,
		Type:        msgType,
		Time:        time.Now().UTC(),
		Data:        raw,
	}, nil
}

// Message converts the event into the envelope pushed to subscribers.
func (e Event) Message() models.Message {
	return models.Message{Type: e.Type, Data: e.Data}
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.MessageType, interface{}) error { return nil }
