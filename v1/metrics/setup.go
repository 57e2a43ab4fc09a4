package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry all collectors register against.
	// Each service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// wrapped applies the constant service label to registered collectors.
	wrapped prometheus.Registerer
}

// NewMetrics sets up a dedicated Prometheus registry, optionally registers
// the default system collectors, wraps all metrics with a constant `service`
// label, and creates an HTTP server exposing the /metrics endpoint.
//
// The server is created but not started; use the FX module or call
// Server.ListenAndServe yourself.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Metrics{
		Server: &http.Server{
			Addr:              cfg.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		Registry: registry,
		wrapped:  wrapped,
	}
}

// Registerer returns the label-wrapped registerer components should attach
// their collectors to.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.wrapped
}
