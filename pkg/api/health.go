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

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/carverauto/netwatch/pkg/version"
)

const healthTimeout = 3 * time.Second

// @Summary Service and database health
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /api/health [get]
func (s *APIServer) getHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC(),
		Version:   version.Get(),
	}

	if s.subscriberCounts != nil {
		resp.Subscribers = s.subscriberCounts()
	}

	if s.hostStats != nil {
		resp.Host = s.hostStats(ctx)
	}

	status := http.StatusOK

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Health check failed")

		resp.Status = "error"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	s.writeJSON(w, status, resp)
}

// collectHostStats reads load, memory and uptime. Missing figures stay zero.
func collectHostStats(ctx context.Context) *HostStats {
	stats := &HostStats{}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		stats.Load1 = avg.Load1
		stats.Load5 = avg.Load5
		stats.Load15 = avg.Load15
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats.MemoryUsedPercent = vm.UsedPercent
	}

	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		stats.UptimeSeconds = uptime
	}

	return stats
}
