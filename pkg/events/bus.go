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

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

// New returns a NATS bus when cfg enables one and an in-process bus otherwise.
func New(ctx context.Context, cfg *models.EventsConfig, log logger.Logger) (Bus, error) {
	if cfg == nil || !cfg.Enabled || cfg.NATS == nil {
		return NewLocalBus(), nil
	}

	return NewNATSBus(ctx, cfg, log)
}
