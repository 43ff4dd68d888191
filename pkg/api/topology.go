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

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/netwatch/pkg/models"
)

// loadTopology reads devices and links concurrently.
func (s *APIServer) loadTopology(ctx context.Context) ([]models.Device, []models.TopologyLink, error) {
	var (
		devices []models.Device
		links   []models.TopologyLink
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		devices, err = s.db.ListDevices(gctx)

		return err
	})

	g.Go(func() error {
		var err error

		links, err = s.db.AllTopologyLinks(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return devices, links, nil
}

// @Summary Devices and links as nodes and edges
// @Tags Topology
// @Produce json
// @Success 200 {object} models.TopologyView
// @Router /api/topology [get]
func (s *APIServer) getTopology(w http.ResponseWriter, r *http.Request) {
	devices, links, err := s.loadTopology(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Topology", "fetch topology")
		return
	}

	s.writeJSON(w, http.StatusOK, models.NewTopologyView(devices, links))
}

// @Summary Topology in graph layout form
// @Tags Topology
// @Produce json
// @Success 200 {object} models.TopologyGraph
// @Router /api/topology/graph [get]
func (s *APIServer) getTopologyGraph(w http.ResponseWriter, r *http.Request) {
	devices, links, err := s.loadTopology(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Topology", "fetch topology graph")
		return
	}

	s.writeJSON(w, http.StatusOK, models.NewTopologyGraph(devices, links))
}

// @Summary List topology links
// @Tags Topology
// @Produce json
// @Success 200 {array} models.TopologyLink
// @Router /api/topology/links [get]
func (s *APIServer) listTopologyLinks(w http.ResponseWriter, r *http.Request) {
	links, err := s.db.AllTopologyLinks(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Topology", "fetch topology links")
		return
	}

	s.writeJSON(w, http.StatusOK, links)
}

// @Summary Links originating at a device
// @Tags Topology
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {array} models.TopologyLink
// @Router /api/devices/{id}/topology [get]
func (s *APIServer) getDeviceTopology(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	links, err := s.db.ListDeviceTopology(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Device", "fetch device topology")
		return
	}

	s.writeJSON(w, http.StatusOK, links)
}
