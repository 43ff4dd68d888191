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

// @Summary List sites
// @Tags Sites
// @Produce json
// @Success 200 {array} models.Site
// @Failure 500 {object} ErrorResponse
// @Router /api/sites [get]
func (s *APIServer) listSites(w http.ResponseWriter, r *http.Request) {
	sites, err := s.db.ListSites(r.Context())
	if err != nil {
		s.writeStoreError(w, err, "Site", "fetch sites")
		return
	}

	s.writeJSON(w, http.StatusOK, sites)
}

// @Summary Get a site
// @Tags Sites
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} models.Site
// @Failure 404 {object} ErrorResponse "Site not found"
// @Router /api/sites/{id} [get]
func (s *APIServer) getSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	site, err := s.db.GetSite(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Site", "fetch site")
		return
	}

	s.writeJSON(w, http.StatusOK, site)
}

// @Summary Create a site
// @Tags Sites
// @Accept json
// @Produce json
// @Param body body models.Site true "Site"
// @Success 201 {object} models.Site
// @Failure 400 {object} ErrorResponse
// @Router /api/sites [post]
func (s *APIServer) createSite(w http.ResponseWriter, r *http.Request) {
	var site models.Site
	if err := decodeBody(w, r, &site); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.db.CreateSite(r.Context(), &site)
	if err != nil {
		s.writeStoreError(w, err, "Site", "create site")
		return
	}

	s.writeJSON(w, http.StatusCreated, created)
}

// updateSite applies the body's fields on top of the stored site.
//
// @Summary Update a site
// @Tags Sites
// @Accept json
// @Produce json
// @Param id path int true "Site ID"
// @Param body body models.Site true "Fields to change"
// @Success 200 {object} models.Site
// @Failure 404 {object} ErrorResponse "Site not found"
// @Router /api/sites/{id} [put]
func (s *APIServer) updateSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	site, err := s.db.GetSite(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err, "Site", "fetch site")
		return
	}

	if err := decodeBody(w, r, site); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	site.ID = id

	updated, err := s.db.UpdateSite(r.Context(), site)
	if err != nil {
		s.writeStoreError(w, err, "Site", "update site")
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}

// @Summary Delete a site
// @Tags Sites
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Site not found"
// @Router /api/sites/{id} [delete]
func (s *APIServer) deleteSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteSite(r.Context(), id); err != nil {
		s.writeStoreError(w, err, "Site", "delete site")
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "Site deleted successfully"})
}
