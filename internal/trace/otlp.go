package trace

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "cyberfolio/wake"

// OTLPExporter exports wake session spans to an OTLP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP/HTTP exporter for endpoint.
// Returns nil if endpoint is empty (disabled). endpoint may be a URL or
// host:port.
func NewOTLPExporter(ctx context.Context, endpoint, serviceName string) (*OTLPExporter, error) {
	if endpoint == "" {
		return nil, nil
	}

	opts, err := endpointOptions(endpoint)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return newExporter(sdktrace.WithBatcher(exporter), serviceName), nil
}

// endpointOptions accepts either a collector URL (http://host:4318, the
// usual OTEL_EXPORTER_OTLP_ENDPOINT form) or a bare host:port, which is
// sent over plain HTTP.
func endpointOptions(endpoint string) ([]otlptracehttp.Option, error) {
	if !strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		}, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("otlp endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("otlp endpoint: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("otlp endpoint: missing host in %q", endpoint)
	}
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}, nil
}

func newExporter(processor sdktrace.TracerProviderOption, serviceName string) *OTLPExporter {
	if serviceName == "" {
		serviceName = "cyberfolio"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithResource(res),
	)
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Tracer returns the exporter's tracer, or a no-op tracer when disabled
func (e *OTLPExporter) Tracer() oteltrace.Tracer {
	if e == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return e.tracer
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
