package qdrant

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer records Prometheus metrics for client operations: one counter
// labeled by operation and outcome, one duration histogram labeled by
// operation. Attach it via Params.Observer; a nil Observer disables
// instrumentation entirely.
type Observer struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewObserver creates an Observer and registers its collectors with reg.
// Pass the registry from the metrics package (or prometheus.DefaultRegisterer).
func NewObserver(reg prometheus.Registerer) *Observer {
	o := &Observer{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qdrant_client_operations_total",
				Help: "Total number of qdrant client operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qdrant_client_operation_duration_seconds",
				Help:    "Duration of qdrant client operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(o.operationsTotal, o.operationDuration)
	return o
}

// observe records one finished operation. Safe on a nil receiver so the
// client can call it unconditionally.
func (o *Observer) observe(operation string, start time.Time, err error) {
	if o == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	o.operationsTotal.WithLabelValues(operation, outcome).Inc()
	o.operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
