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
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	meterName               = "netwatch.broadcast"
	metricTicksTotal        = "netwatch.broadcast.ticks"
	metricSendFailuresTotal = "netwatch.broadcast.send_failures"
)

var (
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	meterOnce sync.Once
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	tickCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	sendFailureCounter metric.Int64Counter
)

func initMeter() {
	meter := otel.Meter(meterName)

	ticks, err := meter.Int64Counter(
		metricTicksTotal,
		metric.WithDescription("Broadcast ticks by channel and outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}
	tickCounter = ticks

	failures, err := meter.Int64Counter(
		metricSendFailuresTotal,
		metric.WithDescription("Per-subscriber send failures during broadcasts"),
	)
	if err != nil {
		otel.Handle(err)
	}
	sendFailureCounter = failures
}

// recordTick counts one tick for channel with outcome skipped, sent or failed.
func recordTick(ctx context.Context, channel models.Channel, outcome string) {
	meterOnce.Do(initMeter)
	if tickCounter == nil {
		return
	}

	tickCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", string(channel)),
		attribute.String("outcome", outcome),
	))
}

func recordSendFailures(ctx context.Context, channel models.Channel, count int) {
	if count == 0 {
		return
	}

	meterOnce.Do(initMeter)
	if sendFailureCounter == nil {
		return
	}

	sendFailureCounter.Add(ctx, int64(count), metric.WithAttributes(attribute.String("channel", string(channel))))
}
