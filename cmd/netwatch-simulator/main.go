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

// netwatch-simulator runs the simulated SNMP poller against the shared
// database without the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/carverauto/netwatch/pkg/config"
	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/events"
	"github.com/carverauto/netwatch/pkg/lifecycle"
	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/simulator"
	"github.com/carverauto/netwatch/pkg/version"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/netwatch/simulator.json", "Path to simulator config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())

		return nil
	}

	ctx := context.Background()

	var cfg models.SimulatorServiceConfig

	if err := config.NewConfig(nil).LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	simLogger, err := lifecycle.CreateComponentLogger(ctx, "simulator", cfg.Logging)
	if err != nil {
		return err
	}

	defer func() {
		if err := lifecycle.ShutdownLogger(); err != nil {
			simLogger.Error().Err(err).Msg("Error shutting down logger")
		}
	}()

	ctx, cancel := lifecycle.SignalContext(ctx, simLogger)
	defer cancel()

	database, err := db.New(ctx, &cfg.Database, false, simLogger)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Events == nil || cfg.Events.NATS == nil {
		simLogger.Warn().Msg("No NATS events configured, core subscribers will only see periodic snapshots")
	}

	bus, err := events.New(ctx, cfg.Events, simLogger)
	if err != nil {
		return err
	}
	defer bus.Close()

	poller := simulator.NewPoller(database, &cfg.Simulator, simLogger, simulator.WithPublisher(bus))

	return poller.Run(ctx)
}
