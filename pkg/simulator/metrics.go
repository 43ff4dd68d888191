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

package simulator

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName        = "netwatch.simulator"
	metricPollsTotal = "netwatch.simulator.polls"
	outcomeUp        = "up"
	outcomeDown      = "down"
	outcomeFailed    = "failed"
)

var (
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	meterOnce sync.Once
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	pollCounter metric.Int64Counter
)

func initMeter() {
	polls, err := otel.Meter(meterName).Int64Counter(
		metricPollsTotal,
		metric.WithDescription("Simulated device polls by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	pollCounter = polls
}

func recordPoll(ctx context.Context, outcome string) {
	meterOnce.Do(initMeter)
	if pollCounter == nil {
		return
	}

	pollCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
