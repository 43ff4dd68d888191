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
	"errors"
	"net/http"

	"github.com/carverauto/netwatch/pkg/db"
)

// @Summary List interfaces
// @Tags Interfaces
// @Produce json
// @Success 200 {array} models.Interface
// @Router /api/interfaces [get]
func (s *APIServer) listInterfaces(w http.ResponseWriter, r *http.Request) {
	interfaces, err := s.db.ListInterfaces(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Interface", "fetch interfaces")
		return
	}

	s.writeJSON(w, http.StatusOK, interfaces)
}

// @Summary Get an interface
// @Tags Interfaces
// @Produce json
// @Param id path int true "Interface ID"
// @Success 200 {object} models.Interface
// @Failure 404 {object} ErrorResponse "Interface not found"
// @Router /api/interfaces/{id} [get]
func (s *APIServer) getInterface(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	iface, err := s.db.GetInterface(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Interface", "fetch interface")
		return
	}

	s.writeJSON(w, http.StatusOK, iface)
}

// @Summary Recent samples of an interface, newest first
// @Tags Stats
// @Produce json
// @Param id path int true "Interface ID"
// @Param limit query int false "Maximum samples (default 100)"
// @Success 200 {array} models.InterfaceStat
// @Router /api/interfaces/{id}/stats [get]
func (s *APIServer) getInterfaceStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := s.db.InterfaceStats(r.Context(), id, queryLimit(r, db.DefaultStatsHistory))
	if err != nil {
		s.writeStoreError(w, err, "Interface", "fetch interface stats")
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}

// getInterfaceLatestStat answers null when the interface has no samples yet.
//
// @Summary Latest sample of an interface
// @Tags Stats
// @Produce json
// @Param id path int true "Interface ID"
// @Success 200 {object} models.InterfaceStat
// @Router /api/interfaces/{id}/stats/latest [get]
func (s *APIServer) getInterfaceLatestStat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	stat, err := s.db.LatestInterfaceStat(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		s.writeJSON(w, http.StatusOK, nil)
		return
	}

	if err != nil {
		s.writeStoreError(w, err, "Interface", "fetch latest interface stats")
		return
	}

	s.writeJSON(w, http.StatusOK, stat)
}
