package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule wires the metrics server into Fx.
//
// It provides:
//   - *Metrics                (NewMetrics)
//   - prometheus.Registerer   (for components registering collectors)
//   - Lifecycle hook          (RegisterMetricsLifecycle)
//
// Dependencies required by this module:
//   - A metrics.Config instance (e.g. via fx.Supply)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) prometheus.Registerer { return m.Registerer() },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the Prometheus HTTP server on application
// start and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting metrics server", zap.String("address", m.Server.Addr))
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("metrics server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down metrics server")
			return m.Server.Shutdown(ctx)
		},
	})
}
