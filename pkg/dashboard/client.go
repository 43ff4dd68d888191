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

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const defaultHTTPTimeout = 15 * time.Second

var errCoreURLRequired = errors.New("core url is required")

// Client talks to the netwatch core REST API.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	logger  logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient parses the core base URL.
func NewClient(cfg *models.ClientConfig, log logger.Logger, opts ...ClientOption) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.CoreURL) == "" {
		return nil, errCoreURLRequired
	}

	parsed, err := url.Parse(cfg.CoreURL)
	if err != nil {
		return nil, fmt.Errorf("invalid core url: %w", err)
	}

	timeout := time.Duration(cfg.RequestTimeout)
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	c := &Client{
		baseURL: parsed,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the parsed core URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL

	return &u
}

func (c *Client) endpoint(parts ...string) string {
	u := *c.baseURL
	u.Path = path.Join(append([]string{u.Path, "api"}, parts...)...)

	return u.String()
}

func (c *Client) do(ctx context.Context, method, endpoint string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if dst == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}

	return nil
}

// APIError is a non-2xx response from the core.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("core returned %d: %s", e.StatusCode, e.Message)
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

	var payload struct {
		Error string `json:"error"`
	}

	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// ListDevices fetches GET /api/devices.
func (c *Client) ListDevices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device

	return devices, c.do(ctx, http.MethodGet, c.endpoint("devices"), &devices)
}

// ListAlerts fetches GET /api/alerts.
func (c *Client) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert

	return alerts, c.do(ctx, http.MethodGet, c.endpoint("alerts"), &alerts)
}

// ListDeviceInterfaces fetches GET /api/devices/{id}/interfaces.
func (c *Client) ListDeviceInterfaces(ctx context.Context, deviceID int64) ([]models.Interface, error) {
	var interfaces []models.Interface

	return interfaces, c.do(ctx, http.MethodGet, c.endpoint("devices", idString(deviceID), "interfaces"), &interfaces)
}

// ListDeviceMacChanges fetches GET /api/mac-changes/device/{id}.
func (c *Client) ListDeviceMacChanges(ctx context.Context, deviceID int64) ([]models.MacChangeLog, error) {
	var changes []models.MacChangeLog

	return changes, c.do(ctx, http.MethodGet, c.endpoint("mac-changes", "device", idString(deviceID)), &changes)
}

// ListTopologyLinks fetches GET /api/topology/links.
func (c *Client) ListTopologyLinks(ctx context.Context) ([]models.TopologyLink, error) {
	var links []models.TopologyLink

	return links, c.do(ctx, http.MethodGet, c.endpoint("topology", "links"), &links)
}

// AcknowledgeAlert calls PUT /api/alerts/{id}/ack.
func (c *Client) AcknowledgeAlert(ctx context.Context, id int64) (*models.Alert, error) {
	var alert models.Alert
	if err := c.do(ctx, http.MethodPut, c.endpoint("alerts", idString(id), "ack"), &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Loader performs the initial REST load into a Store and keeps the per-device
// caches current on selection.
type Loader struct {
	client *Client
	store  *Store
	logger logger.Logger
}

// NewLoader returns a loader for store.
func NewLoader(client *Client, store *Store, log logger.Logger) *Loader {
	return &Loader{client: client, store: store, logger: log}
}

// LoadInitial fetches devices, alerts and topology links concurrently and
// replaces the corresponding slices. Nothing is written unless every fetch succeeds.
func (l *Loader) LoadInitial(ctx context.Context) error {
	var (
		devices []models.Device
		alerts  []models.Alert
		links   []models.TopologyLink
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		devices, err = l.client.ListDevices(gctx)

		return err
	})

	g.Go(func() error {
		var err error
		alerts, err = l.client.ListAlerts(gctx)

		return err
	})

	g.Go(func() error {
		var err error
		links, err = l.client.ListTopologyLinks(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}

	l.store.ReplaceDevices(devices)
	l.store.ReplaceAlerts(alerts)
	l.store.ReplaceTopologyLinks(links)

	l.logger.Info().
		Int("devices", len(devices)).
		Int("alerts", len(alerts)).
		Int("links", len(links)).
		Msg("Initial dashboard load complete")

	return nil
}

// SelectDevice selects a device and loads its interfaces and MAC change log.
func (l *Loader) SelectDevice(ctx context.Context, deviceID int64) error {
	if !l.store.SelectDevice(deviceID) {
		return nil
	}

	var (
		interfaces []models.Interface
		changes    []models.MacChangeLog
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		interfaces, err = l.client.ListDeviceInterfaces(gctx, deviceID)

		return err
	})

	g.Go(func() error {
		var err error
		changes, err = l.client.ListDeviceMacChanges(gctx, deviceID)

		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load device %d: %w", deviceID, err)
	}

	l.store.ReplaceDeviceInterfaces(interfaces)
	l.store.ReplaceAnomalies(deviceID, changes)

	return nil
}

// AcknowledgeAlert acknowledges on the core first, then in the store.
func (l *Loader) AcknowledgeAlert(ctx context.Context, id int64) error {
	if _, err := l.client.AcknowledgeAlert(ctx, id); err != nil {
		return err
	}

	l.store.AcknowledgeAlert(id)

	return nil
}
