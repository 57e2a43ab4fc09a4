package tracer

import "os"

// Config holds the tracer settings.
type Config struct {
	// ServiceName identifies this process in exported traces.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment, e.g. "production".
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false the provider
	// records spans locally only, which is what tests and the CLI want.
	EnableExport bool `yaml:"enable_export" env:"TRACE_ENABLE_EXPORT"`
}

// NewConfig reads the tracer configuration from the environment. The OTLP
// endpoint itself is configured through the standard OTEL_EXPORTER_OTLP_*
// variables understood by the exporter.
func NewConfig() Config {
	return Config{
		ServiceName:  envOr("SERVICE_NAME", "cloudvec"),
		AppEnv:       envOr("APP_ENV", "development"),
		EnableExport: os.Getenv("TRACE_ENABLE_EXPORT") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
