// Package trace wires OpenTelemetry tracing for the process.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// EnvEndpoint enables export when set.
const EnvEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Provider owns the process tracer provider. A nil *Provider is valid and
// means tracing is disabled.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup installs an OTLP/HTTP tracer provider as the global provider when
// OTEL_EXPORTER_OTLP_ENDPOINT is set to a collector URL such as
// http://localhost:4318. It returns nil, nil when the endpoint is
// not configured; the global no-op provider stays in place.
func Setup(ctx context.Context, version string) (*Provider, error) {
	if os.Getenv(EnvEndpoint) == "" {
		return nil, nil
	}

	// The exporter reads the endpoint URL and the rest of the OTEL_EXPORTER_OTLP_*
	// settings itself; an http:// scheme selects plain HTTP.
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "folio"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.tp != nil
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
