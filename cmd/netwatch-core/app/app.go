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

// Package app wires the netwatch-core service: storage, the event bus, the
// broadcast scheduler, the REST API and the optional in-process simulator.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/netwatch/pkg/api"
	"github.com/carverauto/netwatch/pkg/broadcast"
	"github.com/carverauto/netwatch/pkg/config"
	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/events"
	"github.com/carverauto/netwatch/pkg/lifecycle"
	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/simulator"
	"github.com/carverauto/netwatch/pkg/version"
)

const (
	serviceName     = "netwatch-core"
	shutdownTimeout = 10 * time.Second
)

// Options are the command-line settings of netwatch-core.
type Options struct {
	ConfigPath string
	// Migrate applies the schema even when migrate_on_start is false.
	Migrate bool
}

// Run loads the configuration and serves until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg models.CoreConfig

	if err := config.NewConfig(nil).LoadAndValidate(ctx, opts.ConfigPath, &cfg); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	basicLogger, err := lifecycle.CreateComponentLogger(ctx, "core-main", cfg.Logging)
	if err != nil {
		return err
	}

	tp, ctxWithTrace, rootSpan, err := logger.InitializeTracing(ctx, logger.TracingConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetVersion(),
		Logger:         basicLogger,
		OTel:           &cfg.Logging.OTel,
	})
	if err != nil {
		return err
	}

	ctx = ctxWithTrace

	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			basicLogger.Error().Err(err).Msg("Error shutting down tracer provider")
		}

		rootSpan.End()
	}()

	mainLogger, err := lifecycle.CreateComponentLogger(ctx, "core-main", cfg.Logging)
	if err != nil {
		return err
	}

	if _, metricsErr := logger.InitializeMetrics(ctx, logger.MetricsConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetVersion(),
		OTel:           &cfg.Logging.OTel,
	}); metricsErr != nil && !errors.Is(metricsErr, logger.ErrOTelMetricsDisabled) {
		return metricsErr
	}

	defer func() {
		if shutdownErr := lifecycle.ShutdownLogger(); shutdownErr != nil {
			mainLogger.Error().Err(shutdownErr).Msg("Error shutting down logger")
		}
	}()

	ctx, cancel := lifecycle.SignalContext(ctx, mainLogger)
	defer cancel()

	database, err := db.New(ctx, &cfg.Database, cfg.MigrateOnStart || opts.Migrate, mainLogger)
	if err != nil {
		return err
	}

	defer func() {
		if err := database.Close(); err != nil {
			mainLogger.Warn().Err(err).Msg("Error closing database")
		}
	}()

	bus, err := events.New(ctx, cfg.Events, mainLogger)
	if err != nil {
		return err
	}

	defer func() {
		if err := bus.Close(); err != nil {
			mainLogger.Warn().Err(err).Msg("Error closing event bus")
		}
	}()

	return serve(ctx, &cfg, database, bus, mainLogger)
}

func serve(ctx context.Context, cfg *models.CoreConfig, database db.Service, bus events.Bus, log logger.Logger) error {
	registry := broadcast.NewRegistry()

	handlerOpts := []broadcast.HandlerOption{broadcast.WithAllowedOrigins(cfg.CORS.AllowedOrigins)}
	if cfg.Broadcast.SendQueueSize > 0 {
		handlerOpts = append(handlerOpts, broadcast.WithSendQueueSize(cfg.Broadcast.SendQueueSize))
	}

	handler := broadcast.NewHandler(registry, log, handlerOpts...)
	scheduler := broadcast.NewScheduler(database, registry, cfg.Broadcast, log)
	relay := broadcast.NewRelay(registry, log)

	apiServer := api.NewAPIServer(cfg.CORS,
		api.WithDatabase(database),
		api.WithEventPublisher(bus),
		api.WithSubscriptionHandler(handler),
		api.WithSubscriberCounts(registry.Counts),
		api.WithLogger(log),
	)

	httpServer := apiServer.NewHTTPServer(cfg.ListenAddr)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error { return scheduler.Run(gCtx) })
	g.Go(func() error { return relay.Run(gCtx, bus) })

	if cfg.Simulator != nil && cfg.Simulator.Enabled {
		poller := simulator.NewPoller(database, cfg.Simulator, log, simulator.WithPublisher(bus))

		g.Go(func() error { return poller.Run(gCtx) })
	}

	g.Go(func() error {
		log.Info().
			Str("listen_addr", cfg.ListenAddr).
			Str("swagger_url", "http://"+cfg.ListenAddr+"/swagger/doc.json").
			Msg("Starting HTTP API server")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP API server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		// hijacked WebSocket connections are not tracked by http.Server
		handler.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %w", err)
		}

		log.Info().Msg("HTTP API server stopped")

		return nil
	})

	return g.Wait()
}
