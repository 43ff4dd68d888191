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

// Package api provides the NetWatch REST API and mounts the WebSocket
// subscription endpoint.
package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/events"
	nwHttp "github.com/carverauto/netwatch/pkg/http"
	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/swagger"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	maxRequestBodyBytes = 1 << 20
	publishTimeout      = 2 * time.Second
)

// APIServer serves the REST routes over a db.Service.
type APIServer struct {
	router           *mux.Router
	db               db.Service
	publisher        events.Publisher
	subscriptions    http.Handler
	subscriberCounts func() map[models.Channel]int
	hostStats        func(ctx context.Context) *HostStats
	corsConfig       models.CORSConfig
	logger           logger.Logger
}

// NewAPIServer creates a new API server instance with the given configuration
func NewAPIServer(config models.CORSConfig, options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router:     mux.NewRouter(),
		publisher:  events.NopPublisher{},
		hostStats:  collectHostStats,
		corsConfig: config,
		logger:     logger.NewZerologAdapter(zerolog.New(os.Stderr).Level(zerolog.WarnLevel)),
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithDatabase sets the storage backend.
func WithDatabase(database db.Service) func(server *APIServer) {
	return func(server *APIServer) {
		server.db = database
	}
}

// WithEventPublisher sets where device, alert and MAC change events go.
func WithEventPublisher(p events.Publisher) func(server *APIServer) {
	return func(server *APIServer) {
		server.publisher = p
	}
}

// WithSubscriptionHandler mounts h at /ws.
func WithSubscriptionHandler(h http.Handler) func(server *APIServer) {
	return func(server *APIServer) {
		server.subscriptions = h
	}
}

// WithSubscriberCounts reports per-channel subscriber counts on /api/health.
func WithSubscriberCounts(fn func() map[models.Channel]int) func(server *APIServer) {
	return func(server *APIServer) {
		server.subscriberCounts = fn
	}
}

// WithHostStats replaces the host statistics collector.
func WithHostStats(fn func(ctx context.Context) *HostStats) func(server *APIServer) {
	return func(server *APIServer) {
		server.hostStats = fn
	}
}

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) func(server *APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

// setupRoutes configures the HTTP routes for the API server.
func (s *APIServer) setupRoutes() {
	s.setupMiddleware()
	s.setupSwaggerRoutes()

	if s.subscriptions != nil {
		s.router.Handle("/ws", s.subscriptions)
	}

	s.setupAPIRoutes()
}

func (s *APIServer) setupMiddleware() {
	s.router.Use(func(next http.Handler) http.Handler {
		return nwHttp.CommonMiddleware(next, s.corsConfig, s.logger)
	})
}

func (s *APIServer) setupSwaggerRoutes() {
	s.router.HandleFunc("/swagger/doc.json", s.serveSwaggerJSON).Methods(http.MethodGet)

	s.router.HandleFunc("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/doc.json", http.StatusMovedPermanently)
	})
}

func (s *APIServer) setupAPIRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// preflight requests are answered by the CORS middleware
	api.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	api.HandleFunc("/sites", s.listSites).Methods(http.MethodGet)
	api.HandleFunc("/sites", s.createSite).Methods(http.MethodPost)
	api.HandleFunc("/sites/{id}", s.getSite).Methods(http.MethodGet)
	api.HandleFunc("/sites/{id}", s.updateSite).Methods(http.MethodPut)
	api.HandleFunc("/sites/{id}", s.deleteSite).Methods(http.MethodDelete)

	api.HandleFunc("/devices", s.listDevices).Methods(http.MethodGet)
	api.HandleFunc("/devices", s.createDevice).Methods(http.MethodPost)
	api.HandleFunc("/devices/{id}", s.getDevice).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}", s.updateDevice).Methods(http.MethodPut)
	api.HandleFunc("/devices/{id}", s.deleteDevice).Methods(http.MethodDelete)
	api.HandleFunc("/devices/{id}/interfaces", s.listDeviceInterfaces).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}/stats/latest", s.getDeviceLatestStats).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}/topology", s.getDeviceTopology).Methods(http.MethodGet)

	api.HandleFunc("/interfaces", s.listInterfaces).Methods(http.MethodGet)
	api.HandleFunc("/interfaces/{id}", s.getInterface).Methods(http.MethodGet)
	api.HandleFunc("/interfaces/{id}/stats", s.getInterfaceStats).Methods(http.MethodGet)
	api.HandleFunc("/interfaces/{id}/stats/latest", s.getInterfaceLatestStat).Methods(http.MethodGet)

	api.HandleFunc("/stats/latest", s.getLatestStats).Methods(http.MethodGet)
	api.HandleFunc("/stats/device/{id}", s.getDeviceStatsSeries).Methods(http.MethodGet)
	api.HandleFunc("/stats/interface/{id}", s.getInterfaceStats).Methods(http.MethodGet)

	api.HandleFunc("/alerts", s.listAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts", s.createAlert).Methods(http.MethodPost)
	api.HandleFunc("/alerts/device/{id}", s.listDeviceAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts/interface/{id}", s.listInterfaceAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts/{id}/ack", s.acknowledgeAlert).Methods(http.MethodPut)

	api.HandleFunc("/topology", s.getTopology).Methods(http.MethodGet)
	api.HandleFunc("/topology/graph", s.getTopologyGraph).Methods(http.MethodGet)
	api.HandleFunc("/topology/links", s.listTopologyLinks).Methods(http.MethodGet)

	api.HandleFunc("/mac-changes", s.listMacChanges).Methods(http.MethodGet)
	api.HandleFunc("/mac-changes", s.createMacChange).Methods(http.MethodPost)
	api.HandleFunc("/mac-changes/device/{id}", s.listDeviceMacChanges).Methods(http.MethodGet)

	api.HandleFunc("/health", s.getHealth).Methods(http.MethodGet)
}

// Handler returns the router for embedding in an http.Server.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

// NewHTTPServer wraps the router in an http.Server with the default timeouts.
func (s *APIServer) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       defaultReadTimeout,  // Timeout for reading the entire request, including the body.
		ReadHeaderTimeout: defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout, // Timeout for writing the response.
		IdleTimeout:       defaultIdleTimeout,  // Timeout for idle connections waiting in the Keep-Alive state.
	}
}

// @Summary Get API documentation
// @Description Returns the Swagger 2.0 document for this API
// @Tags Docs
// @Produce json
// @Success 200 {object} map[string]interface{} "Swagger document"
// @Router /swagger/doc.json [get]
func (s *APIServer) serveSwaggerJSON(w http.ResponseWriter, _ *http.Request) {
	data, err := swagger.GetSwaggerJSON()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to render swagger document")
		writeError(w, "Failed to render API documentation", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(data); err != nil {
		s.logger.Debug().Err(err).Msg("Failed to write swagger document")
	}
}
