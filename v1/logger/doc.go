// Package logger provides structured logging for cloudvec components.
//
// Like the other v1 packages, it is library surface: applications embedding
// the client compose FXModule into their own fx graph. The bundled CLI is a
// plain consumer and wires nothing through fx.
//
// It wraps Uber's Zap logger with a small, opinionated configuration (JSON
// encoding, ISO8601 timestamps, stderr output) and integrates with the fx
// dependency injection framework.
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "cloudvec",
//	})
//	log.Zap.Info("client connected", zap.String("endpoint", endpoint))
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule, // provides *logger.Logger and *zap.Logger
//	    fx.Supply(logger.Config{Level: logger.Info, ServiceName: "cloudvec"}),
//	    // other modules...
//	)
//	app.Run()
//
// The module also exposes the raw *zap.Logger so packages that only need
// zap (e.g. the qdrant client) can depend on it directly.
//
// # Configuration
//
//	LOG_LEVEL=debug   # debug, info, warning, error
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
