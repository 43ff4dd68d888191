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
	"net/http"

	"github.com/carverauto/netwatch/pkg/db"
)

// @Summary Latest sample for every interface
// @Tags Stats
// @Produce json
// @Success 200 {array} models.InterfaceSnapshot
// @Router /api/stats/latest [get]
func (s *APIServer) getLatestStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.db.LatestStatsSnapshot(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Stats", "fetch latest stats")
		return
	}

	s.writeJSON(w, http.StatusOK, snapshot)
}

// @Summary Latest sample per interface of a device
// @Tags Stats
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {array} models.InterfaceSnapshot
// @Router /api/devices/{id}/stats/latest [get]
func (s *APIServer) getDeviceLatestStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := s.db.LatestDeviceStats(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch device stats")
		return
	}

	s.writeJSON(w, http.StatusOK, snapshot)
}

// @Summary Recent samples per interface of a device
// @Tags Stats
// @Produce json
// @Param id path int true "Device ID"
// @Param limit query int false "Samples per interface (default 100)"
// @Success 200 {array} models.InterfaceStatsSeries
// @Router /api/stats/device/{id} [get]
func (s *APIServer) getDeviceStatsSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	series, err := s.db.DeviceStatsSeries(r.Context(), id, queryLimit(r, db.DefaultStatsHistory))
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch device stats")
		return
	}

	s.writeJSON(w, http.StatusOK, series)
}
