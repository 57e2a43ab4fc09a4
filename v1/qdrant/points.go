package qdrant

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

type upsertPointsRequest struct {
	Points []vectordb.Point `json:"points"`
}

type deletePointsRequest struct {
	Points []vectordb.PointID `json:"points"`
}

// updateResult is the engine's acknowledgment for point mutations.
type updateResult struct {
	OperationID *uint64 `json:"operation_id"`
	Status      string  `json:"status"`
}

// waitQuery makes point mutations block until the engine has applied them,
// so an acknowledged upsert is immediately visible to search.
func waitQuery() url.Values {
	return url.Values{"wait": []string{"true"}}
}

// UpsertPoints inserts or replaces points by identifier. The whole batch
// travels in a single request: from the caller's perspective the upsert is
// all-or-nothing, and any partial-success semantics are the engine's own and
// surface as-is.
//
// The batch must be non-empty — that is checked locally, before any network
// call. Vector length must equal the target collection's dimensionality;
// this client holds no collection metadata cache, so the engine enforces it
// and a mismatch surfaces as ErrPoint carrying the engine's diagnostic.
func (c *Client) UpsertPoints(ctx context.Context, collection string, points []vectordb.Point) error {
	start := time.Now()
	ctx, span := c.startSpan(ctx, "upsert_points", collection)
	var err error
	defer func() { c.finish(span, "upsert_points", start, err) }()

	if collection == "" {
		err = wrapOp(ErrPoint, "upsert points", collection,
			fmt.Errorf("%w: collection name cannot be empty", ErrInvalidArgument))
		return err
	}
	if len(points) == 0 {
		err = wrapOp(ErrPoint, "upsert points", collection,
			fmt.Errorf("%w: point batch cannot be empty", ErrInvalidArgument))
		return err
	}

	var result updateResult
	path := "/collections/" + collection + "/points"
	if err = c.doJSON(ctx, http.MethodPut, path, waitQuery(), upsertPointsRequest{Points: points}, &result); err != nil {
		err = wrapOp(ErrPoint, "upsert points", collection, err)
		return err
	}

	c.log.Info("upserted points",
		zap.String("collection", collection),
		zap.Int("count", len(points)),
		zap.String("status", result.Status))
	return nil
}

// DeletePoints removes points by their identifiers. Unknown identifiers are
// ignored by the engine; the call succeeds as long as the engine accepts the
// request.
func (c *Client) DeletePoints(ctx context.Context, collection string, ids []vectordb.PointID) error {
	start := time.Now()
	ctx, span := c.startSpan(ctx, "delete_points", collection)
	var err error
	defer func() { c.finish(span, "delete_points", start, err) }()

	if collection == "" {
		err = wrapOp(ErrPoint, "delete points", collection,
			fmt.Errorf("%w: collection name cannot be empty", ErrInvalidArgument))
		return err
	}
	if len(ids) == 0 {
		err = wrapOp(ErrPoint, "delete points", collection,
			fmt.Errorf("%w: id list cannot be empty", ErrInvalidArgument))
		return err
	}

	var result updateResult
	path := "/collections/" + collection + "/points/delete"
	if err = c.doJSON(ctx, http.MethodPost, path, waitQuery(), deletePointsRequest{Points: ids}, &result); err != nil {
		err = wrapOp(ErrPoint, "delete points", collection, err)
		return err
	}

	c.log.Info("deleted points",
		zap.String("collection", collection),
		zap.Int("count", len(ids)))
	return nil
}
