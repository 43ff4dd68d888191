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

package broadcast

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

// Handler upgrades /ws requests and ties each connection's lifetime to a
// registry entry on the requested channel.
type Handler struct {
	registry  *Registry
	upgrader  websocket.Upgrader
	queueSize int
	logger    logger.Logger

	mu      sync.Mutex
	clients map[string]*Client
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSendQueueSize sets the per-subscriber outbound buffer.
func WithSendQueueSize(n int) HandlerOption {
	return func(h *Handler) {
		h.queueSize = n
	}
}

// WithAllowedOrigins restricts upgrades to the given origins. "*" or an empty
// list accepts any origin.
func WithAllowedOrigins(origins []string) HandlerOption {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = originChecker(origins)
	}
}

// NewHandler creates the subscription endpoint handler.
func NewHandler(registry *Registry, log logger.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		registry:  registry,
		queueSize: defaultSendQueueSize,
		logger:    log,
		clients:   make(map[string]*Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(nil),
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	channel := models.Channel(r.URL.Query().Get("channel"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("WebSocket upgrade failed")

		return
	}

	client := newClient(conn, channel, h.queueSize, h.logger)

	h.track(client)

	if h.registry.Register(channel, client) {
		h.logger.Debug().
			Str("subscriber", client.ID()).
			Str("channel", string(channel)).
			Msg("Subscriber registered")
	} else {
		h.logger.Debug().
			Str("subscriber", client.ID()).
			Str("channel", string(channel)).
			Msg("Unknown channel, connection will receive nothing")
	}

	go client.writePump()
	go h.serve(client)
}

// serve blocks on the read side and tears the subscription down when it ends.
func (h *Handler) serve(client *Client) {
	client.readPump()

	h.registry.Unregister(client.Channel(), client)
	h.untrack(client)
	client.Close()

	h.logger.Debug().
		Str("subscriber", client.ID()).
		Str("channel", string(client.Channel())).
		Msg("Subscriber unregistered")
}

// Shutdown closes every open connection, registered or not.
func (h *Handler) Shutdown() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))

	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.registry.Unregister(c.Channel(), c)
		c.Close()
	}
}

// ConnectionCount returns the number of open connections.
func (h *Handler) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

func (h *Handler) track(c *Client) {
	h.mu.Lock()
	h.clients[c.ID()] = c
	h.mu.Unlock()
}

func (h *Handler) untrack(c *Client) {
	h.mu.Lock()
	delete(h.clients, c.ID())
	h.mu.Unlock()
}

func originChecker(origins []string) func(*http.Request) bool {
	allowed := make(map[string]struct{}, len(origins))

	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}

		allowed[o] = struct{}{}
	}

	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		_, ok := allowed[origin]

		return ok
	}
}
