package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/zap"
)

// Tracer owns the process-global OpenTelemetry tracer provider. Constructing
// it installs the provider, so spans started anywhere through otel.Tracer
// are recorded and, when export is enabled, shipped over OTLP HTTP.
//
// The Tracer is safe for concurrent use and should be constructed once per
// process, normally through FXModule.
type Tracer struct {
	provider *trace.TracerProvider
	log      *zap.Logger
}

// NewClient builds the tracer provider and installs it as the global
// OpenTelemetry provider along with W3C trace context propagation.
//
// With cfg.EnableExport set, an OTLP HTTP exporter is attached; its endpoint
// comes from the standard OTEL_EXPORTER_OTLP_* environment variables.
func NewClient(cfg Config, log *zap.Logger) (*Tracer, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient())
		if err != nil {
			return nil, err
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("tracer provider installed",
		zap.String("service", cfg.ServiceName),
		zap.Bool("export", cfg.EnableExport),
	)

	return &Tracer{provider: tp, log: log}, nil
}

// Shutdown flushes pending spans and releases exporter resources.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
