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
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const (
	tracerName = "netwatch.broadcast"

	outcomeSkipped = "skipped"
	outcomeSent    = "sent"
	outcomeFailed  = "failed"
)

// Scheduler runs one periodic timer per channel and fans each snapshot out
// to the channel's current members.
type Scheduler struct {
	provider SnapshotProvider
	registry *Registry
	config   models.BroadcastConfig
	clock    clock.Clock
	tracer   trace.Tracer
	logger   logger.Logger

	wg sync.WaitGroup
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) SchedulerOption {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// NewScheduler creates a scheduler. Zero intervals in cfg fall back to defaults.
func NewScheduler(provider SnapshotProvider, registry *Registry, cfg models.BroadcastConfig,
	log logger.Logger, opts ...SchedulerOption) *Scheduler {
	cfg.ApplyDefaults()

	s := &Scheduler{
		provider: provider,
		registry: registry,
		config:   cfg,
		clock:    clock.New(),
		tracer:   otel.Tracer(tracerName),
		logger:   log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Interval returns the tick period of channel.
func (s *Scheduler) Interval(channel models.Channel) time.Duration {
	switch channel {
	case models.ChannelStats:
		return time.Duration(s.config.StatsInterval)
	case models.ChannelAlerts:
		return time.Duration(s.config.AlertsInterval)
	case models.ChannelTopology:
		return time.Duration(s.config.TopologyInterval)
	default:
		return 0
	}
}

// Start creates the three tickers and returns once they are armed. The timers
// stop when ctx is cancelled; Wait blocks until their loops have returned.
func (s *Scheduler) Start(ctx context.Context) {
	for _, channel := range models.Channels() {
		interval := s.Interval(channel)
		if interval <= 0 {
			s.logger.Error().Str("channel", string(channel)).Msg("Non-positive broadcast interval, channel disabled")

			continue
		}

		ticker := s.clock.Ticker(interval)

		s.wg.Add(1)

		go s.loop(ctx, channel, ticker)
	}

	s.logger.Info().
		Dur("stats", s.Interval(models.ChannelStats)).
		Dur("alerts", s.Interval(models.ChannelAlerts)).
		Dur("topology", s.Interval(models.ChannelTopology)).
		Msg("Broadcast scheduler started")
}

// Wait blocks until every timer loop has exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Run starts the timers and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start(ctx)

	<-ctx.Done()

	s.Wait()

	s.logger.Info().Msg("Broadcast scheduler stopped")

	return nil
}

func (s *Scheduler) loop(ctx context.Context, channel models.Channel, ticker *clock.Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(ctx, channel); err != nil {
				s.logger.Error().Err(err).Str("channel", string(channel)).Msg("Broadcast tick abandoned")
			}
		}
	}
}

// Tick performs one broadcast for channel. A channel without members is
// skipped without touching the provider. A provider error abandons the tick
// and is returned; per-subscriber send errors are logged and counted only.
func (s *Scheduler) Tick(ctx context.Context, channel models.Channel) error {
	members := s.registry.Members(channel)
	if len(members) == 0 {
		recordTick(ctx, channel, outcomeSkipped)

		return nil
	}

	ctx, span := s.tracer.Start(ctx, "broadcast.tick", trace.WithAttributes(
		attribute.String("channel", string(channel)),
		attribute.Int("members", len(members)),
	))
	defer span.End()

	payload, err := s.encodeSnapshot(ctx, channel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot failed")
		recordTick(ctx, channel, outcomeFailed)

		return err
	}

	failures := deliver(members, payload, func(sub Subscriber, err error) {
		s.logger.Warn().
			Err(err).
			Str("channel", string(channel)).
			Str("subscriber", sub.ID()).
			Msg("Failed to send snapshot")
	})

	span.SetAttributes(attribute.Int("send_failures", failures))
	recordSendFailures(ctx, channel, failures)
	recordTick(ctx, channel, outcomeSent)

	return nil
}

// encodeSnapshot reads the channel's snapshot and marshals the envelope once.
func (s *Scheduler) encodeSnapshot(ctx context.Context, channel models.Channel) ([]byte, error) {
	var (
		data interface{}
		err  error
	)

	switch channel {
	case models.ChannelStats:
		var snapshot []models.InterfaceSnapshot

		snapshot, err = s.provider.LatestStatsSnapshot(ctx)
		if snapshot == nil {
			snapshot = []models.InterfaceSnapshot{}
		}

		data = snapshot
	case models.ChannelAlerts:
		var alerts []models.Alert

		alerts, err = s.provider.RecentAlerts(ctx, s.config.AlertLimit)
		if alerts == nil {
			alerts = []models.Alert{}
		}

		data = alerts
	case models.ChannelTopology:
		var links []models.TopologyLink

		links, err = s.provider.AllTopologyLinks(ctx)
		if links == nil {
			links = []models.TopologyLink{}
		}

		data = links
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownChannel, channel)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s snapshot: %w", channel, err)
	}

	payload, err := json.Marshal(models.Message{Type: models.MessageType(channel), Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s snapshot: %w", channel, err)
	}

	return payload, nil
}

// deliver hands the same payload to every member and returns the failure count.
func deliver(members []Subscriber, payload []byte, onError func(Subscriber, error)) int {
	failures := 0

	for _, sub := range members {
		if err := sub.Send(payload); err != nil {
			failures++

			onError(sub, err)
		}
	}

	return failures
}
