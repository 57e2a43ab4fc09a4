// Package qdrant provides a modular, dependency-injected REST client for the
// Qdrant vector database.
//
// The package translates collection lifecycle operations (create, inspect,
// delete) and point operations (upsert, delete, similarity search with
// optional payload filtering) into HTTP/JSON exchanges against a remote
// Qdrant instance, and normalizes engine responses and failures into the
// stable local contract of [github.com/cloudvec/cloudvec/v1/vectordb]. It
// integrates with the fx dependency injection framework and supports
// builder-style configuration.
//
// # Core Features
//
//   - Connection handle with a liveness probe at construction (fail fast)
//   - Config struct supporting environment (QDRANT_*) and YAML loading
//   - Engine-agnostic interface via vectordb.Service
//   - Typed error taxonomy checked with errors.Is, engine diagnostics kept
//   - Prometheus operation metrics and OpenTelemetry spans
//   - Managed lifecycle with Fx integration
//
// # Basic Usage
//
//	client, err := qdrant.NewClient(qdrant.Params{
//	    Config: qdrant.FromHost("localhost"),
//	})
//	if err != nil {
//	    log.Fatal(err) // endpoint unreachable: fatal for the session
//	}
//
//	err = client.CreateCollection(ctx, "documents", 4, vectordb.DistanceDot)
//
//	err = client.UpsertPoints(ctx, "documents", []vectordb.Point{
//	    {ID: vectordb.NumericID(1), Vector: []float32{0.05, 0.61, 0.76, 0.74},
//	     Payload: map[string]any{"city": "Berlin"}},
//	})
//
//	results, err := client.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "documents",
//	    Vector:         []float32{0.2, 0.1, 0.9, 0.7},
//	    Limit:          3,
//	})
//	for _, res := range results {
//	    fmt.Printf("ID=%s Score=%.4f\n", res.ID, res.Score)
//	}
//
// # Error Handling
//
// Every remote-call failure is re-surfaced as one of the package's sentinel
// kinds carrying the original engine diagnostic — never discarded, never
// collapsed into a boolean:
//
//	err := client.DeleteCollection(ctx, "missing")
//	if qdrant.IsNotFound(err) {
//	    // the collection did not exist; the delete did not succeed
//	}
//
// Local precondition violations (empty batch, non-positive limit) fail
// before any network call and satisfy errors.Is(err, ErrInvalidArgument).
//
// The client does not retry. Callers needing resilience wrap calls with
// their own retry/backoff policy.
//
// # Concurrency
//
// Every operation is one synchronous request/response exchange bounded by
// the configured timeout. The client holds no mutable state after
// construction and is safe for concurrent use; it imposes no ordering
// across concurrent callers sharing one handle.
//
// # FX Module Integration
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    // other modules...
//	)
//	app.Run()
//
// # Configuration
//
// Via environment variables:
//
//	QDRANT_HOST=localhost     (required)
//	QDRANT_PORT=6333
//	QDRANT_API_KEY=...
//	QDRANT_TIMEOUT=5s
//
// # Package Layout
//
//	qdrant/
//	├── client.go        // connection handle, probe, lifecycle
//	├── collections.go   // collection registry operations
//	├── points.go        // point upsert/delete
//	├── search.go        // similarity search
//	├── filters.go       // vectordb filter -> REST filter grammar
//	├── transport.go     // HTTP/JSON exchange and error mapping
//	├── errors.go        // error taxonomy
//	├── observer.go      // Prometheus operation metrics
//	├── configs.go       // configuration struct
//	└── fx_module.go     // Fx dependency injection module
//
// # Related Packages
//
//   - [github.com/cloudvec/cloudvec/v1/vectordb]: engine-agnostic types and interfaces
//   - [github.com/cloudvec/cloudvec/v1/metrics]: Prometheus registry and /metrics server
package qdrant
