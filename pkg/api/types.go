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
	"time"

	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/version"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /api/health.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Database    string                 `json:"database"`
	Timestamp   time.Time              `json:"timestamp"`
	Version     version.BuildInfo      `json:"version"`
	Subscribers map[models.Channel]int `json:"subscribers,omitempty"`
	Host        *HostStats             `json:"host,omitempty"`
}

// HostStats is a coarse view of the machine running the core service.
type HostStats struct {
	Load1             float64 `json:"load1"`
	Load5             float64 `json:"load5"`
	Load15            float64 `json:"load15"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	UptimeSeconds     uint64  `json:"uptimeSeconds"`
}
