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

	"github.com/carverauto/netwatch/pkg/models"
)

// @Summary List MAC change logs
// @Tags MAC Changes
// @Produce json
// @Success 200 {array} models.MacChangeLog
// @Router /api/mac-changes [get]
func (s *APIServer) listMacChanges(w http.ResponseWriter, r *http.Request) {
	changes, err := s.db.ListMacChanges(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "MAC change", "fetch mac changes")
		return
	}

	s.writeJSON(w, http.StatusOK, changes)
}

// @Summary MAC changes of a device
// @Tags MAC Changes
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {array} models.MacChangeLog
// @Failure 404 {object} ErrorResponse "Device not found"
// @Router /api/mac-changes/device/{id} [get]
func (s *APIServer) listDeviceMacChanges(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	changes, err := s.db.ListDeviceMacChanges(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch device mac changes")
		return
	}

	s.writeJSON(w, http.StatusOK, changes)
}

// createMacChange records the change and pushes it to stats subscribers.
//
// @Summary Record a MAC change
// @Tags MAC Changes
// @Accept json
// @Produce json
// @Param body body models.MacChangeLog true "MAC change"
// @Success 201 {object} models.MacChangeLog
// @Failure 400 {object} ErrorResponse
// @Router /api/mac-changes [post]
func (s *APIServer) createMacChange(w http.ResponseWriter, r *http.Request) {
	var entry models.MacChangeLog
	if err := decodeBody(w, r, &entry); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.db.CreateMacChange(r.Context(), &entry)
	if err != nil {
		s.writeStoreError(w, err, "MAC change", "record mac change")
		return
	}

	s.publish(r.Context(), models.MessageMacChange, created)

	s.writeJSON(w, http.StatusCreated, created)
}
