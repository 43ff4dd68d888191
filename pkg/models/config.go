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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/netwatch/pkg/logger"
)

// Duration is a time.Duration that unmarshals from "5s" strings or nanosecond numbers.
type Duration time.Duration

var (
	errInvalidDuration          = errors.New("invalid duration")
	errLoggingConfigRequired    = errors.New("logging configuration is required")
	errListenAddrRequired       = errors.New("listen address is required")
	errDatabaseHostRequired     = errors.New("database host is required")
	errDatabaseNameRequired     = errors.New("database name is required")
	errBroadcastIntervalInvalid = errors.New("broadcast intervals must be positive")
	errAlertLimitInvalid        = errors.New("broadcast alert_limit must be positive")
	errNATSURLRequired          = errors.New("nats url is required")
	errCoreURLRequired          = errors.New("core url is required")
	errSimulatorIntervalInvalid = errors.New("simulator interval must be positive")
)

const (
	DefaultStatsInterval    = 5 * time.Second
	DefaultAlertsInterval   = 10 * time.Second
	DefaultTopologyInterval = 30 * time.Second
	DefaultAlertLimit       = 10
	defaultEventsSubject    = "netwatch.events"
	defaultSimulatorPeriod  = 30 * time.Second
)

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// CoreConfig is the configuration document of the netwatch-core service.
type CoreConfig struct {
	ListenAddr string           `json:"listen_addr"`
	Database   PostgresDatabase `json:"database"`
	Broadcast  BroadcastConfig  `json:"broadcast"`
	CORS       CORSConfig       `json:"cors,omitempty"`
	Logging    *logger.Config   `json:"logging,omitempty"`
	Events     *EventsConfig    `json:"events,omitempty"`
	Simulator  *SimulatorConfig `json:"simulator,omitempty"`
	// MigrateOnStart applies the embedded schema before serving.
	MigrateOnStart bool `json:"migrate_on_start"`
}

// PostgresDatabase describes the Postgres connection pool.
type PostgresDatabase struct {
	Host               string            `json:"host"`
	Port               int               `json:"port"`
	Database           string            `json:"database"`
	Username           string            `json:"username"`
	Password           string            `json:"password"`
	SSLMode            string            `json:"ssl_mode"`
	ApplicationName    string            `json:"application_name,omitempty"`
	CertDir            string            `json:"cert_dir,omitempty"`
	TLS                *TLSConfig        `json:"tls,omitempty"`
	MaxConnections     int32             `json:"max_connections,omitempty"`
	MinConnections     int32             `json:"min_connections,omitempty"`
	MaxConnLifetime    Duration          `json:"max_conn_lifetime,omitempty"`
	HealthCheckPeriod  Duration          `json:"health_check_period,omitempty"`
	StatementTimeout   Duration          `json:"statement_timeout,omitempty"`
	ExtraRuntimeParams map[string]string `json:"extra_runtime_params,omitempty"`
}

type TLSConfig struct {
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
	CAFile   string `json:"ca_file"`
}

// BroadcastConfig sets the per-channel timer periods and the alerts snapshot size.
type BroadcastConfig struct {
	StatsInterval    Duration `json:"stats_interval"`
	AlertsInterval   Duration `json:"alerts_interval"`
	TopologyInterval Duration `json:"topology_interval"`
	AlertLimit       int      `json:"alert_limit"`
	// SendQueueSize bounds each subscriber's outbound queue.
	SendQueueSize int `json:"send_queue_size,omitempty"`
}

// ApplyDefaults fills unset fields with the stock 5s/10s/30s cadence.
func (c *BroadcastConfig) ApplyDefaults() {
	if c.StatsInterval == 0 {
		c.StatsInterval = Duration(DefaultStatsInterval)
	}

	if c.AlertsInterval == 0 {
		c.AlertsInterval = Duration(DefaultAlertsInterval)
	}

	if c.TopologyInterval == 0 {
		c.TopologyInterval = Duration(DefaultTopologyInterval)
	}

	if c.AlertLimit == 0 {
		c.AlertLimit = DefaultAlertLimit
	}
}

func (c *BroadcastConfig) Validate() error {
	if c.StatsInterval <= 0 || c.AlertsInterval <= 0 || c.TopologyInterval <= 0 {
		return errBroadcastIntervalInvalid
	}

	if c.AlertLimit <= 0 {
		return errAlertLimitInvalid
	}

	return nil
}

type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins,omitempty"`
	AllowCredentials bool     `json:"allow_credentials,omitempty"`
}

// EventsConfig configures the immediate-event bus. With NATS unset,
// events stay in process.
type EventsConfig struct {
	Enabled bool        `json:"enabled"`
	Subject string      `json:"subject"`
	NATS    *NATSConfig `json:"nats,omitempty"`
}

// NATSConfig configures NATS connectivity
type NATSConfig struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Validate ensures the NATS configuration is valid
func (c *NATSConfig) Validate() error {
	if c.URL == "" {
		return errNATSURLRequired
	}

	return nil
}

// Validate ensures the events configuration is valid
func (c *EventsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.Subject == "" {
		c.Subject = defaultEventsSubject
	}

	if c.NATS != nil {
		return c.NATS.Validate()
	}

	return nil
}

func (c *CoreConfig) Validate() error {
	if c.Logging == nil {
		return errLoggingConfigRequired
	}

	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	if c.Database.Host == "" {
		return errDatabaseHostRequired
	}

	if c.Database.Database == "" {
		return errDatabaseNameRequired
	}

	c.Broadcast.ApplyDefaults()

	if err := c.Broadcast.Validate(); err != nil {
		return err
	}

	if c.Events != nil {
		if err := c.Events.Validate(); err != nil {
			return err
		}
	}

	if c.Simulator != nil && c.Simulator.Enabled {
		return c.Simulator.Validate()
	}

	return nil
}

// SimulatorConfig configures the simulated poller.
type SimulatorConfig struct {
	Enabled  bool     `json:"enabled"`
	Interval Duration `json:"interval"`
	// Seed makes the generated counters reproducible when non-zero.
	Seed int64 `json:"seed,omitempty"`
}

func (c *SimulatorConfig) Validate() error {
	if c.Interval == 0 {
		c.Interval = Duration(defaultSimulatorPeriod)
	}

	if c.Interval < 0 {
		return errSimulatorIntervalInvalid
	}

	return nil
}

// SimulatorServiceConfig is the configuration document of the standalone simulator.
type SimulatorServiceConfig struct {
	Database  PostgresDatabase `json:"database"`
	Simulator SimulatorConfig  `json:"simulator"`
	Logging   *logger.Config   `json:"logging,omitempty"`
	Events    *EventsConfig    `json:"events,omitempty"`
}

func (c *SimulatorServiceConfig) Validate() error {
	if c.Logging == nil {
		return errLoggingConfigRequired
	}

	if c.Database.Host == "" {
		return errDatabaseHostRequired
	}

	if err := c.Simulator.Validate(); err != nil {
		return err
	}

	if c.Events != nil {
		return c.Events.Validate()
	}

	return nil
}

// ClientConfig configures the terminal dashboard.
type ClientConfig struct {
	CoreURL        string         `json:"core_url"`
	RequestTimeout Duration       `json:"request_timeout,omitempty"`
	ReconnectDelay Duration       `json:"reconnect_delay,omitempty"`
	Logging        *logger.Config `json:"logging,omitempty"`
}

func (c *ClientConfig) Validate() error {
	if c.CoreURL == "" {
		return errCoreURLRequired
	}

	return nil
}
