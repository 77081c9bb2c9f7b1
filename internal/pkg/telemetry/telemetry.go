// Package telemetry wires OpenTelemetry tracing for the HTTP server.
package telemetry

import (
	"context"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans
type ShutdownFunc func(context.Context) error

// Setup registers a global tracer provider exporting over OTLP/HTTP.
// When no endpoint is configured it does nothing and returns a no-op shutdown.
func Setup(ctx context.Context, settings config.TelemetrySettings) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if !Enabled(settings) {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(settings.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName(settings))))
	if err != nil {
		return noop, fmt.Errorf("failed to build trace resource: %w", err)
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

// Enabled reports whether Setup will export spans
func Enabled(settings config.TelemetrySettings) bool {
	return settings.Endpoint != ""
}

// Middleware returns the otelgin request tracing middleware.
func Middleware(settings config.TelemetrySettings) gin.HandlerFunc {
	return otelgin.Middleware(serviceName(settings))
}

func serviceName(settings config.TelemetrySettings) string {
	if settings.ServiceName == "" {
		return "nnp-web"
	}
	return settings.ServiceName
}
