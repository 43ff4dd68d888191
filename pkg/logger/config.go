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

package logger

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultServiceName = "netwatch"
	envPrefix          = "NETWATCH_"
)

// DefaultConfig builds a Config from the environment. Every variable may be
// given with the NETWATCH_ prefix, which wins over the bare name.
func DefaultConfig() *Config {
	return &Config{
		Level:      envString("LOG_LEVEL", "info"),
		Debug:      envBool("DEBUG", false),
		Output:     envString("LOG_OUTPUT", "stdout"),
		TimeFormat: envString("LOG_TIME_FORMAT", ""),
		OTel:       DefaultOTelConfig(),
	}
}

// DefaultOTelConfig reads the standard OTEL_EXPORTER_OTLP_LOGS_* variables.
func DefaultOTelConfig() OTelConfig {
	batchTimeout := defaultBatchTimeout
	if d, err := time.ParseDuration(envString("OTEL_EXPORTER_OTLP_LOGS_TIMEOUT", "")); err == nil {
		batchTimeout = d
	}

	return OTelConfig{
		Enabled:      envBool("OTEL_LOGS_ENABLED", false),
		Endpoint:     envString("OTEL_EXPORTER_OTLP_LOGS_ENDPOINT", ""),
		Headers:      parseHeaders(envString("OTEL_EXPORTER_OTLP_LOGS_HEADERS", "")),
		ServiceName:  envString("OTEL_SERVICE_NAME", defaultServiceName),
		BatchTimeout: Duration(batchTimeout),
		Insecure:     envBool("OTEL_EXPORTER_OTLP_LOGS_INSECURE", false),
	}
}

// parseHeaders splits "k1=v1,k2=v2". Pairs without "=" are skipped.
func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)

	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return headers
}

func lookupEnv(key string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}

	return os.Getenv(key)
}

func envString(key, fallback string) string {
	if v := lookupEnv(key); v != "" {
		return v
	}

	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := strings.ToLower(strings.TrimSpace(lookupEnv(key)))

	switch raw {
	case "":
		return fallback
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}

	return v
}
