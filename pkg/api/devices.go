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

	"github.com/carverauto/netwatch/pkg/models"
)

// @Summary List devices
// @Tags Devices
// @Produce json
// @Success 200 {array} models.Device
// @Router /api/devices [get]
func (s *APIServer) listDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.db.ListDevices(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch devices")
		return
	}

	s.writeJSON(w, http.StatusOK, devices)
}

// @Summary Get a device
// @Tags Devices
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} models.Device
// @Failure 404 {object} ErrorResponse "Device not found"
// @Router /api/devices/{id} [get]
func (s *APIServer) getDevice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	device, err := s.db.GetDevice(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch device")
		return
	}

	s.writeJSON(w, http.StatusOK, device)
}

// @Summary Create a device
// @Tags Devices
// @Accept json
// @Produce json
// @Param body body models.Device true "Device"
// @Success 201 {object} models.Device
// @Failure 400 {object} ErrorResponse
// @Router /api/devices [post]
func (s *APIServer) createDevice(w http.ResponseWriter, r *http.Request) {
	var device models.Device
	if err := decodeBody(w, r, &device); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.db.CreateDevice(r.Context(), &device)
	if err != nil {
		s.writeStoreError(w, err, "Device", "create device")
		return
	}

	s.writeJSON(w, http.StatusCreated, created)
}

// updateDevice applies a partial update. A status change is also pushed to
// topology subscribers as a device_update event.
//
// @Summary Update a device
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Param body body models.DevicePatch true "Fields to change"
// @Success 200 {object} models.Device
// @Failure 404 {object} ErrorResponse "Device not found"
// @Router /api/devices/{id} [put]
func (s *APIServer) updateDevice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patch models.DevicePatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := s.db.UpdateDevice(r.Context(), id, &patch)
	if err != nil {
		s.writeStoreError(w, err, "Device", "update device")
		return
	}

	if patch.Status != nil {
		s.publish(r.Context(), models.MessageDeviceUpdate, models.DeviceStatusUpdate{ID: updated.ID, Status: updated.Status})
	}

	s.writeJSON(w, http.StatusOK, updated)
}

// @Summary Delete a device
// @Tags Devices
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Device not found"
// @Router /api/devices/{id} [delete]
func (s *APIServer) deleteDevice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteDevice(r.Context(), id); err != nil {
		s.writeStoreError(w, err, "Device", "delete device")
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "Device deleted successfully"})
}

// @Summary List a device's interfaces
// @Tags Devices
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {array} models.Interface
// @Router /api/devices/{id}/interfaces [get]
func (s *APIServer) listDeviceInterfaces(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	interfaces, err := s.db.ListDeviceInterfaces(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch device interfaces")
		return
	}

	s.writeJSON(w, http.StatusOK, interfaces)
}

// publish emits an immediate event. Failures are logged; the REST response
// does not depend on them.
func (s *APIServer) publish(ctx context.Context, msgType models.MessageType, data interface{}) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, msgType, data); err != nil {
		s.logger.Warn().Err(err).Str("type", string(msgType)).Msg("Failed to publish event")
	}
}
