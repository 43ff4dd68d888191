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

// netwatch-tui is the terminal dashboard. It loads the inventory over REST
// and keeps it live from the core's WebSocket channels.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/netwatch/pkg/config"
	"github.com/carverauto/netwatch/pkg/dashboard"
	"github.com/carverauto/netwatch/pkg/lifecycle"
	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/tui"
	"github.com/carverauto/netwatch/pkg/version"
)

const (
	defaultCoreURL = "http://localhost:5000"
	defaultLogFile = "netwatch-tui.log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to an optional client config file")
	coreURL := flag.String("core-url", "", "Base URL of netwatch-core (default "+defaultCoreURL+")")
	logFile := flag.String("log-file", "", "Write logs to this file")
	reconnect := flag.Duration("reconnect", 0, "Delay between WebSocket reconnect attempts")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())

		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := models.ClientConfig{CoreURL: defaultCoreURL}

	if *configPath != "" {
		if err := config.NewConfig(nil).LoadAndValidate(ctx, *configPath, &cfg); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if *coreURL != "" {
		cfg.CoreURL = *coreURL
	}

	if *reconnect > 0 {
		cfg.ReconnectDelay = models.Duration(*reconnect)
	}

	if *logFile != "" {
		cfg.Logging = &logger.Config{Level: "info", Output: *logFile}
	}

	tuiLogger, err := newLogger(ctx, cfg.Logging)
	if err != nil {
		return err
	}

	defer func() {
		if err := lifecycle.ShutdownLogger(); err != nil {
			tuiLogger.Error().Err(err).Msg("Error shutting down logger")
		}
	}()

	return runDashboard(ctx, &cfg, tuiLogger)
}

// newLogger keeps stdout free for the terminal UI. Without a logging section
// nothing is logged.
func newLogger(ctx context.Context, cfg *logger.Config) (logger.Logger, error) {
	if cfg == nil {
		return logger.NewZerologAdapter(zerolog.Nop()), nil
	}

	if cfg.Output == "" || cfg.Output == "stdout" || cfg.Output == "stderr" {
		cfg.Output = defaultLogFile
	}

	return lifecycle.CreateComponentLogger(ctx, "tui", cfg)
}

func runDashboard(ctx context.Context, cfg *models.ClientConfig, log logger.Logger) error {
	client, err := dashboard.NewClient(cfg, log)
	if err != nil {
		return err
	}

	store := dashboard.NewStore()
	loader := dashboard.NewLoader(client, store, log)

	if err := loader.LoadInitial(ctx); err != nil {
		return err
	}

	var feedOpts []dashboard.FeedOption
	if cfg.ReconnectDelay > 0 {
		feedOpts = append(feedOpts, dashboard.WithReconnectDelay(time.Duration(cfg.ReconnectDelay)))
	}

	feed := dashboard.NewFeed(client.BaseURL(), dashboard.NewDispatcher(store, log), log, feedOpts...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	program := tea.NewProgram(tui.New(gCtx, store, loader), tea.WithAltScreen(), tea.WithContext(gCtx))

	g.Go(func() error {
		if err := feed.Run(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		// quitting the UI stops the feed
		defer cancel()

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("dashboard error: %w", err)
		}

		return nil
	})

	return g.Wait()
}
