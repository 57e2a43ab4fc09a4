package vectordb

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PointID identifies a point within a collection. The engine accepts either
// an unsigned integer or a string (typically a UUID) on the wire, so PointID
// carries one of the two and marshals accordingly.
type PointID struct {
	num     uint64
	str     string
	numeric bool
}

// NumericID builds a PointID from an unsigned integer.
func NumericID(n uint64) PointID {
	return PointID{num: n, numeric: true}
}

// StringID builds a PointID from a string.
func StringID(s string) PointID {
	return PointID{str: s}
}

// IsNumeric reports whether the identifier is the integer form.
func (id PointID) IsNumeric() bool { return id.numeric }

// Num returns the integer form; zero if the identifier is a string.
func (id PointID) Num() uint64 { return id.num }

// String renders the identifier for logs and summaries.
func (id PointID) String() string {
	if id.numeric {
		return strconv.FormatUint(id.num, 10)
	}
	return id.str
}

// MarshalJSON encodes the identifier as a JSON number or string.
func (id PointID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(strconv.FormatUint(id.num, 10)), nil
	}
	return json.Marshal(id.str)
}

// UnmarshalJSON decodes a JSON number or string identifier.
func (id *PointID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("vectordb: point id must be an unsigned integer or a string: %w", err)
	}
	*id = NumericID(n)
	return nil
}

// Point is the unit of storage: an identified vector plus optional payload.
// The vector length must equal the dimensionality of the target collection;
// the engine enforces this on upsert.
type Point struct {
	// ID is unique within the collection. Upserting an existing ID replaces
	// that point.
	ID PointID `json:"id"`

	// Vector is the dense embedding.
	Vector []float32 `json:"vector"`

	// Payload is optional metadata stored with the vector, usable for
	// filtering and returned verbatim on search.
	Payload map[string]any `json:"payload,omitempty"`
}

// Collection contains the observable metadata of a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection.
	Name string `json:"name"`

	// VectorSize is the fixed dimensionality of vectors in this collection.
	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric the collection was created with.
	Distance Distance `json:"distance"`

	// PointCount is the number of stored points.
	PointCount uint64 `json:"pointCount"`
}

// CollectionSummary is the listing form of a collection: its name and the
// point count observed at listing time.
type CollectionSummary struct {
	Name       string `json:"name"`
	PointCount uint64 `json:"pointCount"`
}

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in.
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding. Its length must match the collection's
	// dimensionality (enforced by the engine).
	Vector []float32 `json:"vector"`

	// Limit bounds the number of results. The engine may return fewer.
	Limit int `json:"limit"`

	// Filter optionally restricts candidates by payload before ranking.
	Filter *FilterSet `json:"filter,omitempty"`
}

// SearchResult is one ranked match. Results are ordered best match first
// under the collection's metric.
type SearchResult struct {
	// ID is the identifier of the matched point.
	ID PointID `json:"id"`

	// Score is the similarity score under the collection's metric.
	Score float32 `json:"score"`

	// Payload is the metadata stored with the matched point.
	Payload map[string]any `json:"payload,omitempty"`
}
