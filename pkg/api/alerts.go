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

// @Summary List alerts, newest first
// @Tags Alerts
// @Produce json
// @Success 200 {array} models.Alert
// @Router /api/alerts [get]
func (s *APIServer) listAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.db.ListAlerts(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Alert", "fetch alerts")
		return
	}

	s.writeJSON(w, http.StatusOK, alerts)
}

// @Summary Alerts of a device
// @Tags Alerts
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {array} models.Alert
// @Router /api/alerts/device/{id} [get]
func (s *APIServer) listDeviceAlerts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	alerts, err := s.db.ListDeviceAlerts(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch device alerts")
		return
	}

	s.writeJSON(w, http.StatusOK, alerts)
}

// @Summary Alerts of an interface
// @Tags Alerts
// @Produce json
// @Param id path int true "Interface ID"
// @Success 200 {array} models.Alert
// @Router /api/alerts/interface/{id} [get]
func (s *APIServer) listInterfaceAlerts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	alerts, err := s.db.ListInterfaceAlerts(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Interface", "fetch interface alerts")
		return
	}

	s.writeJSON(w, http.StatusOK, alerts)
}

// createAlert stores the alert and pushes it to alerts subscribers as new_alert.
//
// @Summary Raise an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Param body body models.Alert true "Alert"
// @Success 201 {object} models.Alert
// @Failure 400 {object} ErrorResponse
// @Router /api/alerts [post]
func (s *APIServer) createAlert(w http.ResponseWriter, r *http.Request) {
	var alert models.Alert
	if err := decodeBody(w, r, &alert); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.db.CreateAlert(r.Context(), &alert)
	if err != nil {
		s.writeStoreError(w, err, "Alert", "create alert")
		return
	}

	s.publish(r.Context(), models.MessageNewAlert, created)

	s.writeJSON(w, http.StatusCreated, created)
}

// @Summary Acknowledge an alert
// @Tags Alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /api/alerts/{id}/ack [put]
func (s *APIServer) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	alert, err := s.db.AcknowledgeAlert(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Alert", "acknowledge alert")
		return
	}

	s.writeJSON(w, http.StatusOK, alert)
}
