// Package vectordb defines the engine-agnostic data model for vector
// collections and similarity search.
//
// The package holds only types and validation — no transport. Engine client
// packages (currently [github.com/cloudvec/cloudvec/v1/qdrant]) implement the
// [Service] interface and translate these types into their wire format. This
// keeps application code independent of the concrete vector-search engine.
//
// # Core Types
//
//   - [Distance]: the similarity metric of a collection (Cosine, Dot, Euclid)
//   - [Point]: an identified vector plus optional payload, the unit of storage
//   - [PointID]: integer-or-string point identifier
//   - [Collection] / [CollectionSummary]: collection metadata
//   - [SearchRequest] / [SearchResult]: similarity search input and output
//   - [FilterSet]: payload predicate restricting search candidates
//
// # Distance Parsing
//
// [ParseDistance] rejects unrecognized metric names with an error. The
// permissive behavior of older tooling — mapping anything unknown to Cosine —
// is still available as [ParseDistanceLenient] for callers that depend on it,
// but new code should treat an unknown metric as a caller bug.
//
// # Filters
//
// Filters support Must (AND), Should (OR) and MustNot (NOT) clauses over
// payload fields:
//
//	filter := vectordb.NewFilterSet(
//	    vectordb.Must(
//	        vectordb.NewMatch("city", "London"),
//	    ),
//	)
//	results, err := db.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "documents",
//	    Vector:         queryVector,
//	    Limit:          10,
//	    Filter:         filter,
//	})
//
// Beyond this structure the filter is opaque to the client: conditions are
// passed through to the engine, which evaluates them before ranking.
//
// # Testing
//
// Depend on the [Service] interface in application code so a fake
// implementation can be substituted in tests.
package vectordb
