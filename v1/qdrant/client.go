package qdrant

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

//
// ──────────────────────────────────────────────────────────────
//   QDRANT REST CLIENT
// ──────────────────────────────────────────────────────────────
//
// This file defines the connection handle for Qdrant's REST API.
//
// The client speaks plain HTTP/JSON against the engine and implements the
// engine-agnostic vectordb.Service interface. Construction performs one
// liveness probe and fails fast if the endpoint is unreachable; after that
// the handle is read-only and safe for concurrent use.
//

// Tracer for client operation spans.
var tracer = otel.Tracer("cloudvec.qdrant")

// Client is the connection handle to a Qdrant instance. All collection,
// point and search operations go through it. It holds no mutable state
// beyond the configuration captured at construction.
type Client struct {
	cfg     *Config
	baseURL string
	hc      *http.Client
	log     *zap.Logger
	obs     *Observer
}

var _ vectordb.Service = (*Client)(nil)

// NewClient constructs a connection handle and validates connectivity with a
// lightweight probe (list collections) bounded by cfg.ConnectTimeout.
//
// An unreachable or rejecting endpoint fails construction with an error
// wrapping ErrConnection — fatal for the session. This client never retries;
// callers needing resilience wrap calls with their own policy.
//
// Example:
//
//	client, err := qdrant.NewClient(qdrant.Params{Config: qdrant.FromHost("localhost")})
func NewClient(p Params) (*Client, error) {
	cfg := p.Config
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	scheme := "http"
	if cfg.UseTLS {
		scheme = "https"
	}

	c := &Client{
		cfg:     cfg,
		baseURL: fmt.Sprintf("%s://%s:%d", scheme, cfg.Host, cfg.Port),
		hc:      &http.Client{Timeout: cfg.Timeout},
		log:     log,
		obs:     p.Observer,
	}

	log.Info("connecting to qdrant", zap.String("endpoint", c.baseURL))

	if err := c.probe(); err != nil {
		return nil, err
	}

	log.Info("qdrant client connected")
	return c, nil
}

// probe verifies the endpoint actually speaks the collections API.
// It is the only side effect of construction.
func (c *Client) probe() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.ConnectTimeout)
	defer cancel()

	var result collectionsListResult
	if err := c.doJSON(ctx, http.MethodGet, "/collections", nil, nil, &result); err != nil {
		return fmt.Errorf("probe %s: %w: %w", c.baseURL, ErrConnection, err)
	}
	return nil
}

// Endpoint returns the base URL the client talks to.
func (c *Client) Endpoint() string {
	return c.baseURL
}

// Close releases idle connections. The client keeps no other resources; it
// exists for lifecycle symmetry with the fx module.
func (c *Client) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// startSpan opens a client operation span carrying the target collection.
func (c *Client) startSpan(ctx context.Context, op, collection string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "qdrant."+op, trace.WithAttributes(
		attribute.String("db.operation", op),
		attribute.String("db.collection", collection),
	))
}

// finish closes out one operation: span status, metrics, debug log.
func (c *Client) finish(span trace.Span, op string, start time.Time, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
	c.obs.observe(op, start, err)
	if err != nil {
		c.log.Debug("qdrant operation failed", zap.String("operation", op), zap.Error(err))
	}
}

// wrapOp attaches the operation kind and target to a lower-level failure so
// callers can both read it and branch on it with errors.Is.
func wrapOp(kind error, op, target string, err error) error {
	if target == "" {
		return fmt.Errorf("%s: %w: %w", op, kind, err)
	}
	return fmt.Errorf("%s %q: %w: %w", op, target, kind, err)
}
