package qdrant

import "errors"

// Error taxonomy. Every failed operation wraps exactly one of the operation
// kinds (connection, collection, point, search) plus, where the engine's
// response identifies it, a more specific condition (not found, already
// exists). Both layers are reachable with errors.Is, and the engine's
// diagnostic text is always preserved in the chain.
var (
	// ErrConnection is returned when the endpoint is unreachable or the
	// construction-time probe is rejected. Fatal for the session; this
	// client never retries.
	ErrConnection = errors.New("qdrant: connection failed")

	// ErrCollection is returned when a collection operation
	// (create/describe/delete/list) fails.
	ErrCollection = errors.New("qdrant: collection operation failed")

	// ErrPoint is returned when a point upsert or delete fails, including
	// dimensionality mismatches reported by the engine.
	ErrPoint = errors.New("qdrant: point operation failed")

	// ErrSearch is returned when a similarity search fails. A search that
	// matches nothing is success, not ErrSearch.
	ErrSearch = errors.New("qdrant: search failed")

	// ErrNotFound is the specific condition for "named resource absent".
	ErrNotFound = errors.New("qdrant: not found")

	// ErrAlreadyExists is the specific condition for a name conflict on
	// collection creation.
	ErrAlreadyExists = errors.New("qdrant: already exists")

	// ErrInvalidConfig is returned by constructors for unusable
	// configuration (missing host, port out of range).
	ErrInvalidConfig = errors.New("qdrant: invalid config")

	// ErrInvalidArgument is returned for local precondition violations
	// (empty batch, non-positive limit) before any network call is issued.
	ErrInvalidArgument = errors.New("qdrant: invalid argument")
)

// IsNotFound checks if the error means the named resource is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is a collection name conflict.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsConnectionError checks if the error is a session-fatal connection failure.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsInvalidConfig checks if the error reports unusable configuration.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
