package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// InitTracing installs the global OpenTelemetry tracer provider. When
// endpoint is empty, tracing is a no-op (trace/noop) — forge's spans are
// free to create but never leave the process. When endpoint is set, spans
// are exported over OTLP/gRPC, the same exporter transport the teacher
// wires up for its own container-service tracing.
//
// The returned shutdown func flushes and closes the exporter; callers
// should defer it from main().
func InitTracing(ctx context.Context, endpoint string) (shutdown func(context.Context) error, err error) {
	if endpoint == "" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dialing otlp endpoint %q: %w", endpoint, err)
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("creating otlp trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(2*time.Second)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// Tracer is a small convenience wrapper so callers don't need to import
// go.opentelemetry.io/otel directly just to fetch the global tracer.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
