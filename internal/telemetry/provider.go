// SPDX-License-Identifier: MIT

// Package telemetry wires opt-in OpenTelemetry tracing for lvalign.
package telemetry

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// EnvEndpoint names the OTLP/HTTP collector URL. Empty disables tracing.
	EnvEndpoint = "LVALIGN_OTEL_ENDPOINT"

	// EnvEnabled set to "false" disables tracing even with an endpoint.
	EnvEnabled = "LVALIGN_OTEL_ENABLED"

	instrumentation = "github.com/katalvlaran/lvalign"
)

// Setup installs a global tracer provider exporting to EnvEndpoint.
//
// Tracing is opt-in: without an endpoint, or with EnvEnabled set to "false",
// Setup registers nothing and returns a no-op shutdown. The returned shutdown
// flushes pending spans and should be deferred by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv(EnvEnabled), "false") {
		return noop, nil
	}
	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
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

// Tracer returns the lvalign tracer from the global provider. Before Setup,
// or when tracing is disabled, its spans are no-ops.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentation)
}
