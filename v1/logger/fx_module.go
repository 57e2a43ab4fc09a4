package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule wires the logger into Fx.
//
// It provides:
//   - Config         (NewConfig — LOG_LEVEL / SERVICE_NAME environment)
//   - *Logger        (NewLoggerClient)
//   - *zap.Logger    (unwrapped, for packages that depend on zap directly)
//   - Lifecycle hook (RegisterLoggerLifecycle)
//
// Supplying your own Config with fx.Supply/fx.Replace overrides the
// environment-derived one.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewConfig,
		NewLoggerClient,
		func(l *Logger) *zap.Logger { return l.Zap },
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes buffered log entries on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on stderr may legitimately fail (e.g. on Linux ttys);
			// nothing actionable remains at shutdown.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
