// Package metrics exposes a per-service Prometheus registry and the /metrics
// HTTP endpoint for scraping.
//
// It is library surface for long-running applications that embed the client;
// the one-shot CLI does not start a metrics server.
//
// Each service gets its own isolated registry (no cross-service metric name
// collisions) wrapped with a constant `service` label, plus the standard Go
// and process collectors. Components register their own collectors against
// the registry — e.g. the qdrant client's Observer:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "cloudvec"})
//	obs := qdrant.NewObserver(m.Registry)
//
// # FX Module Integration
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{Address: ":9090", ServiceName: "cloudvec"}),
//	    // other modules...
//	)
//
// The module starts the HTTP server on application start and shuts it down
// gracefully on stop. Metrics are served at http://<address>/metrics.
package metrics
