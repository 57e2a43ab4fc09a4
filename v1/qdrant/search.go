package qdrant

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

type searchPointsRequest struct {
	Vector      []float32      `json:"vector"`
	Limit       int            `json:"limit"`
	Filter      map[string]any `json:"filter,omitempty"`
	WithPayload bool           `json:"with_payload"`
}

type scoredPoint struct {
	ID      vectordb.PointID `json:"id"`
	Score   float32          `json:"score"`
	Payload map[string]any   `json:"payload"`
}

// Search returns the points most similar to the query vector, best match
// first under the collection's configured metric, at most req.Limit entries.
// Ties are broken by the engine's internal order; no stability is assumed.
//
// The query vector length must match the collection's dimensionality
// (enforced by the engine). A filter, if present, restricts candidates by
// payload before ranking — an empty result set after filtering is success.
// On any transport or engine failure no results are returned, only an error
// wrapping ErrSearch.
func (c *Client) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	start := time.Now()
	ctx, span := c.startSpan(ctx, "search", req.CollectionName)
	var err error
	defer func() { c.finish(span, "search", start, err) }()

	if err = validateSearchRequest(req); err != nil {
		err = wrapOp(ErrSearch, "search", req.CollectionName, err)
		return nil, err
	}

	var filter map[string]any
	filter, err = buildFilter(req.Filter)
	if err != nil {
		err = wrapOp(ErrSearch, "search", req.CollectionName, err)
		return nil, err
	}

	body := searchPointsRequest{
		Vector:      req.Vector,
		Limit:       req.Limit,
		Filter:      filter,
		WithPayload: true,
	}

	var scored []scoredPoint
	path := "/collections/" + req.CollectionName + "/points/search"
	if err = c.doJSON(ctx, http.MethodPost, path, nil, body, &scored); err != nil {
		err = wrapOp(ErrSearch, "search", req.CollectionName, err)
		return nil, err
	}

	results := make([]vectordb.SearchResult, len(scored))
	for i, p := range scored {
		results[i] = vectordb.SearchResult{ID: p.ID, Score: p.Score, Payload: p.Payload}
	}

	c.log.Debug("search completed",
		zap.String("collection", req.CollectionName),
		zap.Int("limit", req.Limit),
		zap.Int("results", len(results)))
	return results, nil
}

// validateSearchRequest checks local preconditions before any network call.
func validateSearchRequest(req vectordb.SearchRequest) error {
	if req.CollectionName == "" {
		return fmt.Errorf("%w: collection name cannot be empty", ErrInvalidArgument)
	}
	if len(req.Vector) == 0 {
		return fmt.Errorf("%w: query vector cannot be empty", ErrInvalidArgument)
	}
	if req.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, req.Limit)
	}
	return nil
}
