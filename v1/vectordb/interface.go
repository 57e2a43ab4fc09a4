package vectordb

import "context"

// Service is the common interface for vector-search engine clients.
// It provides an engine-agnostic abstraction over collection lifecycle,
// point storage and similarity search, so applications can switch engines
// without changing application code.
//
// All operations are synchronous: each issues one blocking request against
// the remote engine and returns (or fails) before the caller continues.
// Implementations hold no mutable state beyond read-only connection
// configuration and are safe for concurrent use; callers wanting parallelism
// run operations from their own goroutines.
type Service interface {
	// ListCollections returns every collection with its current point count.
	// An empty slice is a valid result, not an error.
	ListCollections(ctx context.Context) ([]CollectionSummary, error)

	// CreateCollection creates a named collection with a fixed vector
	// dimensionality and distance metric. Both are immutable afterward.
	// Fails if the name already exists.
	CreateCollection(ctx context.Context, name string, vectorSize int, distance Distance) error

	// DescribeCollection retrieves the observable metadata of a collection.
	DescribeCollection(ctx context.Context, name string) (*Collection, error)

	// CollectionExists reports whether the named collection exists,
	// distinguishing "absent" from transport failure.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// DeleteCollection removes a collection and all of its points.
	// Deleting an absent collection is an error, not a no-op.
	DeleteCollection(ctx context.Context, name string) error

	// UpsertPoints inserts or replaces points by identifier. The whole batch
	// travels in one request; it must be non-empty.
	UpsertPoints(ctx context.Context, collection string, points []Point) error

	// DeletePoints removes points by their identifiers.
	DeletePoints(ctx context.Context, collection string, ids []PointID) error

	// Search returns the top matches for the query vector, best match first
	// under the collection's metric, at most req.Limit entries. Fewer or
	// zero matches is success, not an error.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)
}
