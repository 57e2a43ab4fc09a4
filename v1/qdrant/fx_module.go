package qdrant

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

// Params collects the client's constructor dependencies. Logger and Observer
// are optional: outside of fx, Params{Config: cfg} is enough.
type Params struct {
	fx.In

	Config   *Config
	Logger   *zap.Logger `optional:"true"`
	Observer *Observer   `optional:"true"`
}

// FXModule wires the qdrant client into Fx.
//
// It provides:
//   - *Config            (NewConfigFromEnv — QDRANT_* environment variables)
//   - *Client            (NewClient, probes connectivity at startup)
//   - vectordb.Service   (the client, behind the engine-agnostic interface)
//   - Lifecycle hook     (RegisterClientLifecycle)
var FXModule = fx.Module(
	"qdrant",

	fx.Provide(
		NewConfigFromEnv, // -> *Config
		NewClient,        // -> *Client
		AsService,        // -> vectordb.Service
	),

	fx.Invoke(RegisterClientLifecycle),
)

// AsService exposes the concrete client as the vectordb.Service interface
// for consumers that want to stay engine-agnostic.
func AsService(c *Client) vectordb.Service {
	return c
}

// RegisterClientLifecycle releases the client's idle connections on
// application shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
