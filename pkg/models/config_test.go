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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
)

func validCoreConfig() *CoreConfig {
	return &CoreConfig{
		ListenAddr: ":5000",
		Database:   PostgresDatabase{Host: "localhost", Database: "netwatch"},
		Logging:    &logger.Config{Level: "info"},
	}
}

func TestCoreConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *CoreConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*CoreConfig) {}},
		{name: "missing logging", mutate: func(c *CoreConfig) { c.Logging = nil }, wantErr: errLoggingConfigRequired},
		{name: "missing listen addr", mutate: func(c *CoreConfig) { c.ListenAddr = "" }, wantErr: errListenAddrRequired},
		{name: "missing db host", mutate: func(c *CoreConfig) { c.Database.Host = "" }, wantErr: errDatabaseHostRequired},
		{name: "missing db name", mutate: func(c *CoreConfig) { c.Database.Database = "" }, wantErr: errDatabaseNameRequired},
		{
			name:    "negative interval",
			mutate:  func(c *CoreConfig) { c.Broadcast.StatsInterval = Duration(-time.Second) },
			wantErr: errBroadcastIntervalInvalid,
		},
		{
			name:    "nats without url",
			mutate:  func(c *CoreConfig) { c.Events = &EventsConfig{Enabled: true, NATS: &NATSConfig{}} },
			wantErr: errNATSURLRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCoreConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCoreConfigValidate_AppliesBroadcastDefaults(t *testing.T) {
	cfg := validCoreConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, Duration(5*time.Second), cfg.Broadcast.StatsInterval)
	assert.Equal(t, Duration(10*time.Second), cfg.Broadcast.AlertsInterval)
	assert.Equal(t, Duration(30*time.Second), cfg.Broadcast.TopologyInterval)
	assert.Equal(t, 10, cfg.Broadcast.AlertLimit)
}

func TestCoreConfigUnmarshal(t *testing.T) {
	raw := `{
		"listen_addr": ":8080",
		"database": {"host": "db", "port": 5433, "database": "netwatch", "statement_timeout": "2s"},
		"broadcast": {"stats_interval": "1s", "alerts_interval": 2000000000},
		"logging": {"level": "debug"},
		"events": {"enabled": true}
	}`

	var cfg CoreConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, Duration(2*time.Second), cfg.Database.StatementTimeout)
	assert.Equal(t, Duration(time.Second), cfg.Broadcast.StatsInterval)
	assert.Equal(t, Duration(2*time.Second), cfg.Broadcast.AlertsInterval)
	assert.Equal(t, Duration(30*time.Second), cfg.Broadcast.TopologyInterval)
	assert.Equal(t, "netwatch.events", cfg.Events.Subject)
}

func TestDurationUnmarshal_Invalid(t *testing.T) {
	var d Duration

	assert.ErrorIs(t, json.Unmarshal([]byte(`"fast"`), &d), errInvalidDuration)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[]`), &d), errInvalidDuration)
}

func TestSimulatorServiceConfigValidate(t *testing.T) {
	cfg := &SimulatorServiceConfig{
		Database: PostgresDatabase{Host: "db"},
		Logging:  &logger.Config{},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, Duration(30*time.Second), cfg.Simulator.Interval)

	cfg.Simulator.Interval = Duration(-time.Second)
	assert.ErrorIs(t, cfg.Validate(), errSimulatorIntervalInvalid)
}

func TestClientConfigValidate(t *testing.T) {
	assert.ErrorIs(t, (&ClientConfig{}).Validate(), errCoreURLRequired)
	assert.NoError(t, (&ClientConfig{CoreURL: "http://localhost:5000"}).Validate())
}
