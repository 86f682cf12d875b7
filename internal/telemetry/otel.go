package telemetry

import (
	"context"
	"log"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const ENDPOINT_ENV = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"

type exporterTarget struct {
	endpoint string
	path     string
	insecure bool
}

// parseEndpoint accepts either a full URL or a bare host:port.
func parseEndpoint(raw string) exporterTarget {
	target := exporterTarget{endpoint: "localhost:4318", path: "/v1/traces", insecure: true}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		if raw != "" {
			target.endpoint = raw
		}
		return target
	}

	u, err := url.Parse(raw)
	if err != nil {
		return target
	}
	if u.Host != "" {
		target.endpoint = u.Host
	}
	if u.Path != "" {
		target.path = u.Path
	}
	target.insecure = u.Scheme == "http"
	return target
}

// InitTracer installs a global OTLP tracer provider. Tracing stays disabled,
// and the returned shutdown is a no-op, unless the endpoint env var is set.
func InitTracer(ctx context.Context, serviceName, serviceVersion string) (func(), error) {
	raw := os.Getenv(ENDPOINT_ENV)
	if raw == "" {
		return func() {}, nil
	}

	target := parseEndpoint(raw)
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(target.endpoint),
		otlptracehttp.WithURLPath(target.path),
	}
	if target.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Printf("opentelemetry tracing enabled for %s, exporting to %s%s", serviceName, target.endpoint, target.path)

	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}, nil
}
