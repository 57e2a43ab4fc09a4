package qdrant

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

// Wire shapes for the collections API.

type vectorParams struct {
	Size     int               `json:"size"`
	Distance vectordb.Distance `json:"distance"`
}

type createCollectionRequest struct {
	Vectors vectorParams `json:"vectors"`
}

type collectionsListResult struct {
	Collections []struct {
		Name string `json:"name"`
	} `json:"collections"`
}

type collectionInfoResult struct {
	Status      string  `json:"status"`
	PointsCount *uint64 `json:"points_count"`
	Config      struct {
		Params struct {
			Vectors vectorParams `json:"vectors"`
		} `json:"params"`
	} `json:"config"`
}

// ListCollections returns every collection with its current point count.
// The listing itself only yields names, so each name costs one additional
// describe call; the calls run sequentially, matching the client's
// one-blocking-exchange-per-operation model. An empty engine is a valid,
// empty result.
func (c *Client) ListCollections(ctx context.Context) ([]vectordb.CollectionSummary, error) {
	start := time.Now()
	ctx, span := c.startSpan(ctx, "list_collections", "")
	var err error
	defer func() { c.finish(span, "list_collections", start, err) }()

	var listed collectionsListResult
	if err = c.doJSON(ctx, http.MethodGet, "/collections", nil, nil, &listed); err != nil {
		err = wrapOp(ErrCollection, "list collections", "", err)
		return nil, err
	}

	summaries := make([]vectordb.CollectionSummary, 0, len(listed.Collections))
	for _, entry := range listed.Collections {
		var info *vectordb.Collection
		info, err = c.DescribeCollection(ctx, entry.Name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, vectordb.CollectionSummary{
			Name:       entry.Name,
			PointCount: info.PointCount,
		})
	}

	c.log.Debug("listed collections", zap.Int("count", len(summaries)))
	return summaries, nil
}

// CreateCollection creates a named collection with a fixed vector
// dimensionality and distance metric. Dimensionality and metric are
// validated locally before any network call; both are immutable once the
// collection exists.
//
// A name conflict surfaces as an error satisfying both errors.Is(err,
// ErrCollection) and errors.Is(err, ErrAlreadyExists), with the engine's
// diagnostic preserved so callers can tell it apart from transport failure.
func (c *Client) CreateCollection(ctx context.Context, name string, vectorSize int, distance vectordb.Distance) error {
	start := time.Now()
	ctx, span := c.startSpan(ctx, "create_collection", name)
	var err error
	defer func() { c.finish(span, "create_collection", start, err) }()

	if name == "" {
		err = wrapOp(ErrCollection, "create collection", name,
			fmt.Errorf("%w: name cannot be empty", ErrInvalidArgument))
		return err
	}
	if vectorSize <= 0 {
		err = wrapOp(ErrCollection, "create collection", name,
			fmt.Errorf("%w: vector size must be positive, got %d", ErrInvalidArgument, vectorSize))
		return err
	}
	if !distance.Valid() {
		err = wrapOp(ErrCollection, "create collection", name,
			fmt.Errorf("%w: unknown distance metric %q", ErrInvalidArgument, string(distance)))
		return err
	}

	body := createCollectionRequest{Vectors: vectorParams{Size: vectorSize, Distance: distance}}
	if err = c.doJSON(ctx, http.MethodPut, "/collections/"+name, nil, body, nil); err != nil {
		err = wrapOp(ErrCollection, "create collection", name, err)
		return err
	}

	c.log.Info("created collection",
		zap.String("collection", name),
		zap.Int("vector_size", vectorSize),
		zap.String("distance", string(distance)))
	return nil
}

// DescribeCollection retrieves the observable metadata of a collection:
// point count, dimensionality and distance metric. An absent name yields an
// error satisfying errors.Is(err, ErrNotFound).
func (c *Client) DescribeCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	start := time.Now()
	ctx, span := c.startSpan(ctx, "describe_collection", name)
	var err error
	defer func() { c.finish(span, "describe_collection", start, err) }()

	if name == "" {
		err = wrapOp(ErrCollection, "describe collection", name,
			fmt.Errorf("%w: name cannot be empty", ErrInvalidArgument))
		return nil, err
	}

	var info collectionInfoResult
	if err = c.doJSON(ctx, http.MethodGet, "/collections/"+name, nil, nil, &info); err != nil {
		err = wrapOp(ErrCollection, "describe collection", name, err)
		return nil, err
	}

	return &vectordb.Collection{
		Name:       name,
		VectorSize: info.Config.Params.Vectors.Size,
		Distance:   info.Config.Params.Vectors.Distance,
		PointCount: derefUint64(info.PointsCount),
	}, nil
}

// CollectionExists reports whether the named collection exists. A not-found
// answer from the engine maps to (false, nil); anything else that fails is a
// real error.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	_, err := c.DescribeCollection(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

// DeleteCollection removes a collection and all of its points. Deletion is
// not idempotent at this layer: deleting an absent collection is an error
// satisfying errors.Is(err, ErrNotFound), never masked as success.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	start := time.Now()
	ctx, span := c.startSpan(ctx, "delete_collection", name)
	var err error
	defer func() { c.finish(span, "delete_collection", start, err) }()

	if name == "" {
		err = wrapOp(ErrCollection, "delete collection", name,
			fmt.Errorf("%w: name cannot be empty", ErrInvalidArgument))
		return err
	}

	// Some engine versions answer a delete of a missing collection with
	// HTTP 200 and result=false instead of 404. Treat both as not found.
	var deleted bool
	if err = c.doJSON(ctx, http.MethodDelete, "/collections/"+name, nil, nil, &deleted); err != nil {
		err = wrapOp(ErrCollection, "delete collection", name, err)
		return err
	}
	if !deleted {
		err = wrapOp(ErrCollection, "delete collection", name,
			fmt.Errorf("%w: collection does not exist", ErrNotFound))
		return err
	}

	c.log.Info("deleted collection", zap.String("collection", name))
	return nil
}

// derefUint64 safely dereferences a *uint64 pointer.
// If the pointer is nil, it returns 0 instead of panicking.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}
