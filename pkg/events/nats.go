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
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const (
	defaultReconnectWait = 2 * time.Second
	drainTimeout         = 5 * time.Second
	defaultSubject       = "netwatch.events"
)

var errNATSURLRequired = errors.New("nats url is required")

// NATSBus publishes events to NATS subjects of the form <subject>.<type>.
type NATSBus struct {
	nc      *nats.Conn
	subject string
	logger  logger.Logger
}

// NewNATSBus connects to the server in cfg.
func NewNATSBus(ctx context.Context, cfg *models.EventsConfig, log logger.Logger) (*NATSBus, error) {
	if cfg == nil || cfg.NATS == nil || cfg.NATS.URL == "" {
		return nil, errNATSURLRequired
	}

	name := cfg.NATS.Name
	if name == "" {
		name = "netwatch"
	}

	opts := []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(defaultReconnectWait),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
		nats.ConnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("Connected to NATS")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.NATS.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	if err := nc.FlushWithContext(ctx); err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to flush NATS connection: %w", err)
	}

	subject := cfg.Subject
	if subject == "" {
		subject = defaultSubject
	}

	return &NATSBus{nc: nc, subject: subject, logger: log}, nil
}

// Publish marshals the event envelope and publishes it on <subject>.<type>.
func (b *NATSBus) Publish(_ context.Context, msgType models.MessageType, data interface{}) error {
	event, err := NewEvent(msgType, data)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.nc.Publish(subjectFor(b.subject, msgType), payload); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", msgType, err)
	}

	return nil
}

// Subscribe receives every event published under the configured subject.
func (b *NATSBus) Subscribe(handler Handler) (func(), error) {
	sub, err := b.nc.Subscribe(b.subject+".>", func(msg *nats.Msg) {
		event, err := decodeEvent(msg.Data)
		if err != nil {
			b.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("Dropping malformed event")
			return
		}

		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", b.subject, err)
	}

	return func() {
		if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			b.logger.Debug().Err(err).Msg("Failed to unsubscribe")
		}
	}, nil
}

// Close drains pending messages and closes the connection.
func (b *NATSBus) Close() error {
	if b.nc == nil || b.nc.IsClosed() {
		return nil
	}

	done := make(chan struct{})

	b.nc.SetClosedHandler(func(*nats.Conn) { close(done) })

	if err := b.nc.Drain(); err != nil {
		b.nc.Close()

		return err
	}

	select {
	case <-done:
	case <-time.After(drainTimeout):
		b.nc.Close()
	}

	return nil
}

func subjectFor(prefix string, msgType models.MessageType) string {
	return prefix + "." + string(msgType)
}

func decodeEvent(data []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Type.Channel() == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrUnsupportedEvent, event.Type)
	}

	return event, nil
}
