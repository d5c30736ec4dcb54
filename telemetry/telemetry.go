// Package telemetry wires OpenTelemetry tracing for applications built on
// the framework.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Environment variables that configure tracing.
const (
	// EnvEndpoint names the OTLP HTTP endpoint spans are exported to.
	// Tracing stays off while it is empty.
	EnvEndpoint = "APOGEE_OTEL_ENDPOINT"
	// EnvEnabled turns tracing off when set to "false" even if an endpoint
	// is configured.
	EnvEnabled = "APOGEE_OTEL_ENABLED"
)

type setupEnv struct {
	Endpoint string `env:"APOGEE_OTEL_ENDPOINT"`
	Enabled  string `env:"APOGEE_OTEL_ENABLED"`
}

// Setup initialises OpenTelemetry tracing for an application.
//
// Tracing is opt-in: when APOGEE_OTEL_ENDPOINT is empty or
// APOGEE_OTEL_ENABLED is "false", Setup returns a no-op shutdown function
// and no global provider is registered. The exported resource carries the
// application name and the environment it runs in.
//
// The returned shutdown function flushes pending spans and should be
// deferred by the caller.
func Setup(ctx context.Context, appName, environmentName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var raw setupEnv
	if err := env.Parse(&raw); err != nil {
		return noop, fmt.Errorf("parse telemetry environment: %w", err)
	}
	if strings.EqualFold(raw.Enabled, "false") {
		return noop, nil
	}
	if raw.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(raw.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(appName),
			semconv.DeploymentEnvironment(environmentName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
