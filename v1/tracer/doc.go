// Package tracer installs the process-global OpenTelemetry tracer provider.
//
// Clients in this module start spans through otel.Tracer, which records
// nothing until a provider is installed. Including tracer.FXModule (or
// calling NewClient directly) installs a provider with the service's
// resource attributes and, optionally, an OTLP HTTP exporter.
//
// Like logger and metrics, this is library surface for applications that
// embed the client in their own fx graph; the one-shot CLI leaves the
// default no-op provider in place.
//
// Configuration comes from the environment: SERVICE_NAME, APP_ENV and
// TRACE_ENABLE_EXPORT. With export enabled, the exporter endpoint follows
// the standard OTEL_EXPORTER_OTLP_* variables.
package tracer
