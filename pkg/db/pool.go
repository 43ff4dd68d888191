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

package db

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const (
	defaultPort            = 5432
	defaultApplicationName = "netwatch"
	sslModeDisable         = "disable"
	sslModeVerifyFull      = "verify-full"
)

// NewPool dials the configured Postgres server and returns a pgx pool.
func NewPool(ctx context.Context, cfg *models.PostgresDatabase, log logger.Logger) (*pgxpool.Pool, error) {
	connURL, err := buildConnURL(cfg)
	if err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(connURL.String())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse connection string: %w", ErrFailedOpenDB, err)
	}

	if cfg.MaxConnections > 0 {
		poolConfig.MaxConns = cfg.MaxConnections
	}

	if cfg.MinConnections > 0 {
		poolConfig.MinConns = cfg.MinConnections
	}

	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime)
	}

	if cfg.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = time.Duration(cfg.HealthCheckPeriod)
	}

	if cfg.StatementTimeout > 0 {
		ms := time.Duration(cfg.StatementTimeout) / time.Millisecond
		poolConfig.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprintf("%d", ms)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize pool: %w", ErrFailedOpenDB, err)
	}

	if log != nil {
		log.Info().
			Str("host", cfg.Host).
			Str("database", cfg.Database).
			Int32("max_conns", poolConfig.MaxConns).
			Msg("connected to Postgres")
	}

	return pool, nil
}

func buildConnURL(cfg *models.PostgresDatabase) (*url.URL, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, ErrHostRequired
	}

	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}

	connURL := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, port),
		Path:   "/" + cfg.Database,
	}

	if cfg.Username != "" {
		if cfg.Password != "" {
			connURL.User = url.UserPassword(cfg.Username, cfg.Password)
		} else {
			connURL.User = url.User(cfg.Username)
		}
	}

	sslMode, err := resolveSSLMode(cfg)
	if err != nil {
		return nil, err
	}

	query := connURL.Query()

	for k, v := range cfg.ExtraRuntimeParams {
		if k == "" {
			continue
		}

		query.Set(k, v)
	}

	query.Set("sslmode", sslMode)

	appName := cfg.ApplicationName
	if appName == "" {
		appName = defaultApplicationName
	}

	query.Set("application_name", appName)

	if cfg.TLS != nil {
		query.Set("sslcert", resolveCertPath(cfg.CertDir, cfg.TLS.CertFile))
		query.Set("sslkey", resolveCertPath(cfg.CertDir, cfg.TLS.KeyFile))
		query.Set("sslrootcert", resolveCertPath(cfg.CertDir, cfg.TLS.CAFile))
	}

	connURL.RawQuery = query.Encode()

	return connURL, nil
}

// resolveSSLMode defaults to verify-full with client certificates and to
// disable without them. ssl_mode wins over an sslmode runtime param.
func resolveSSLMode(cfg *models.PostgresDatabase) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.SSLMode))
	if mode == "" {
		mode = strings.ToLower(strings.TrimSpace(cfg.ExtraRuntimeParams["sslmode"]))
	}

	if cfg.TLS == nil {
		if mode == "" {
			return sslModeDisable, nil
		}

		return mode, nil
	}

	if cfg.TLS.CertFile == "" || cfg.TLS.KeyFile == "" || cfg.TLS.CAFile == "" {
		return "", ErrTLSIncomplete
	}

	switch mode {
	case "":
		return sslModeVerifyFull, nil
	case sslModeDisable:
		return "", ErrTLSDisabled
	default:
		return mode, nil
	}
}

func resolveCertPath(certDir, path string) string {
	if path == "" || certDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(certDir, path)
}
