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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const sampleCoreConfig = `{
  "listen_addr": ":5000",
  "database": {
    "host": "postgres",
    "database": "netwatch",
    "cert_dir": "/etc/netwatch/certs",
    "tls": {"cert_file": "client.pem", "key_file": "client-key.pem", "ca_file": "/abs/root.pem"}
  },
  "broadcast": {"stats_interval": "2s"},
  "logging": {"level": "info"}
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadAndValidate_File(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	var cfg models.CoreConfig

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), writeConfig(t, sampleCoreConfig), &cfg)
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, models.Duration(2*time.Second), cfg.Broadcast.StatsInterval)
	assert.Equal(t, models.Duration(10*time.Second), cfg.Broadcast.AlertsInterval)

	require.NotNil(t, cfg.Database.TLS)
	assert.Equal(t, "/etc/netwatch/certs/client.pem", cfg.Database.TLS.CertFile)
	assert.Equal(t, "/etc/netwatch/certs/client-key.pem", cfg.Database.TLS.KeyFile)
	assert.Equal(t, "/abs/root.pem", cfg.Database.TLS.CAFile)
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	var cfg models.CoreConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), filepath.Join(t.TempDir(), "nope.json"), &cfg)
	assert.Error(t, err)
}

func TestLoadAndValidate_InvalidSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	var cfg models.CoreConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg)
	assert.ErrorIs(t, err, errInvalidConfigSource)
}

func TestLoadAndValidate_ValidationFailure(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	var cfg models.CoreConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), writeConfig(t, `{"listen_addr": ":5000"}`), &cfg)
	assert.Error(t, err)
}

func TestEnvLoader_Fields(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("NETWATCH_LISTEN_ADDR", ":9000")
	t.Setenv("NETWATCH_DATABASE_HOST", "db.internal")
	t.Setenv("NETWATCH_DATABASE_DATABASE", "netwatch")
	t.Setenv("NETWATCH_DATABASE_PORT", "6432")
	t.Setenv("NETWATCH_DATABASE_STATEMENT_TIMEOUT", "3s")
	t.Setenv("NETWATCH_BROADCAST_ALERT_LIMIT", "25")
	t.Setenv("NETWATCH_BROADCAST_TOPOLOGY_INTERVAL", "1m")
	t.Setenv("NETWATCH_CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local")
	t.Setenv("NETWATCH_LOGGING_LEVEL", "debug")

	var cfg models.CoreConfig

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "", &cfg)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, models.Duration(3*time.Second), cfg.Database.StatementTimeout)
	assert.Equal(t, 25, cfg.Broadcast.AlertLimit)
	assert.Equal(t, models.Duration(time.Minute), cfg.Broadcast.TopologyInterval)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowedOrigins)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched optional sections stay nil
	assert.Nil(t, cfg.Database.TLS)
	assert.Nil(t, cfg.Events)
	assert.Nil(t, cfg.Simulator)
}

func TestEnvLoader_ConfigJSON(t *testing.T) {
	t.Setenv("NETWATCH_CONFIG_JSON", `{"listen_addr": ":7000", "database": {"host": "h", "database": "d"}}`)

	var cfg models.CoreConfig

	require.NoError(t, NewEnvConfigLoader(nil, DefaultEnvPrefix).Load(context.Background(), "", &cfg))
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, "h", cfg.Database.Host)
}

func TestEnvLoader_RejectsNonPointer(t *testing.T) {
	loader := NewEnvConfigLoader(nil, DefaultEnvPrefix)

	assert.ErrorIs(t, loader.Load(context.Background(), "", models.CoreConfig{}), ErrDstMustBeNonNilPointer)

	s := "x"
	assert.ErrorIs(t, loader.Load(context.Background(), "", &s), ErrDstMustBePointerToStruct)
}

func TestLoadAndValidate_YAMLFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	body := `
listen_addr: ":5000"
database:
  host: postgres
  database: netwatch
broadcast:
  stats_interval: 1s
  alert_limit: 5
logging:
  level: info
`
	path := filepath.Join(t.TempDir(), "core.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var cfg models.CoreConfig

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg))
	assert.Equal(t, models.Duration(time.Second), cfg.Broadcast.StatsInterval)
	assert.Equal(t, 5, cfg.Broadcast.AlertLimit)
	assert.Equal(t, "postgres", cfg.Database.Host)
}
