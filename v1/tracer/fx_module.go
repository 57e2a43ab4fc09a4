package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires distributed tracing into Fx. Including it installs the
// global tracer provider at startup and flushes spans on shutdown, so
// instrumented clients pick up tracing without any manual wiring.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes and shuts down the tracer provider when
// the application stops.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.log.Info("shutting down tracer")
			return tracer.Shutdown(ctx)
		},
	})
}
