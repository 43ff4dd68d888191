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
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.31.0"
	"google.golang.org/grpc/credentials"
)

// exportEnabled reports whether c points at a collector.
func (c *OTelConfig) exportEnabled() bool {
	return c != nil && c.Enabled && c.Endpoint != ""
}

// collectorSettings is the transport half of OTelConfig. The log, trace and
// metric exporters all dial the same collector with it.
type collectorSettings struct {
	endpoint string
	insecure bool
	headers  map[string]string
	creds    credentials.TransportCredentials
}

func newCollectorSettings(config *OTelConfig) (collectorSettings, error) {
	s := collectorSettings{
		endpoint: config.Endpoint,
		insecure: config.Insecure,
		headers:  config.Headers,
	}

	if s.insecure || config.TLS == nil {
		return s, nil
	}

	tlsConfig, err := setupTLSConfig(config.TLS)
	if err != nil {
		return s, fmt.Errorf("failed to setup TLS configuration: %w", err)
	}

	s.creds = credentials.NewTLS(tlsConfig)

	return s, nil
}

func (s collectorSettings) logOptions() []otlploggrpc.Option {
	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(s.endpoint)}

	switch {
	case s.insecure:
		opts = append(opts, otlploggrpc.WithInsecure())
	case s.creds != nil:
		opts = append(opts, otlploggrpc.WithTLSCredentials(s.creds))
	}

	if len(s.headers) > 0 {
		opts = append(opts, otlploggrpc.WithHeaders(s.headers))
	}

	return opts
}

func (s collectorSettings) traceOptions() []otlptracegrpc.Option {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(s.endpoint)}

	switch {
	case s.insecure:
		opts = append(opts, otlptracegrpc.WithInsecure())
	case s.creds != nil:
		opts = append(opts, otlptracegrpc.WithTLSCredentials(s.creds))
	}

	if len(s.headers) > 0 {
		opts = append(opts, otlptracegrpc.WithHeaders(s.headers))
	}

	return opts
}

func (s collectorSettings) metricOptions() []otlpmetricgrpc.Option {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(s.endpoint)}

	switch {
	case s.insecure:
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	case s.creds != nil:
		opts = append(opts, otlpmetricgrpc.WithTLSCredentials(s.creds))
	}

	if len(s.headers) > 0 {
		opts = append(opts, otlpmetricgrpc.WithHeaders(s.headers))
	}

	return opts
}

// newResource describes the running netwatch binary to the collector.
func newResource(ctx context.Context, serviceName, serviceVersion string) (*resource.Resource, error) {
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	if serviceVersion == "" {
		serviceVersion = defaultServiceVersion
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return res, nil
}

func setupTLSConfig(cfg *TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}

		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if cfg.CAFile == "" {
		return tlsConfig, nil
	}

	pem, err := os.ReadFile(cfg.CAFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errFailedToParseCACert
	}

	tlsConfig.RootCAs = pool

	return tlsConfig, nil
}
