package qdrant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

// seedTestCollection loads the reference scenario: dimensionality 4, dot
// product metric, three city-tagged points.
func seedTestCollection(t *testing.T, client *Client) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, client.CreateCollection(ctx, "test_collection", 4, vectordb.DistanceDot))
	require.NoError(t, client.UpsertPoints(ctx, "test_collection", []vectordb.Point{
		{ID: vectordb.NumericID(1), Vector: []float32{0.05, 0.61, 0.76, 0.74}, Payload: map[string]any{"city": "Berlin"}},
		{ID: vectordb.NumericID(2), Vector: []float32{0.19, 0.81, 0.75, 0.11}, Payload: map[string]any{"city": "London"}},
		{ID: vectordb.NumericID(3), Vector: []float32{0.36, 0.55, 0.47, 0.94}, Payload: map[string]any{"city": "Moscow"}},
	}))
}

func TestSearch_DotProductRanking(t *testing.T) {
	client, _ := newTestClient(t)
	seedTestCollection(t, client)

	results, err := client.Search(context.Background(), vectordb.SearchRequest{
		CollectionName: "test_collection",
		Vector:         []float32{0.2, 0.1, 0.9, 0.7},
		Limit:          3,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Scores are the dot products of query and stored vectors, descending.
	assert.Equal(t, "1", results[0].ID.String())
	assert.InDelta(t, 1.273, results[0].Score, 1e-3)
	assert.Equal(t, "3", results[1].ID.String())
	assert.InDelta(t, 1.208, results[1].Score, 1e-3)
	assert.Equal(t, "2", results[2].ID.String())
	assert.InDelta(t, 0.871, results[2].Score, 1e-3)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score, "scores must be non-increasing")
	}

	// Payloads come back verbatim.
	assert.Equal(t, "Berlin", results[0].Payload["city"])
	assert.Equal(t, "Moscow", results[1].Payload["city"])
	assert.Equal(t, "London", results[2].Payload["city"])
}

func TestSearch_LimitBoundsResults(t *testing.T) {
	client, _ := newTestClient(t)
	seedTestCollection(t, client)

	results, err := client.Search(context.Background(), vectordb.SearchRequest{
		CollectionName: "test_collection",
		Vector:         []float32{0.2, 0.1, 0.9, 0.7},
		Limit:          2,
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Fewer matching points than the limit is not an error.
	results, err = client.Search(context.Background(), vectordb.SearchRequest{
		CollectionName: "test_collection",
		Vector:         []float32{0.2, 0.1, 0.9, 0.7},
		Limit:          50,
	})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearch_EmptyCollection(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.CreateCollection(ctx, "empty", 4, vectordb.DistanceCosine))

	results, err := client.Search(ctx, vectordb.SearchRequest{
		CollectionName: "empty",
		Vector:         []float32{0.1, 0.2, 0.3, 0.4},
		Limit:          10,
	})
	require.NoError(t, err, "searching an empty collection is not an error")
	assert.Empty(t, results)
}

func TestSearch_WithPayloadFilter(t *testing.T) {
	client, _ := newTestClient(t)
	seedTestCollection(t, client)
	ctx := context.Background()

	results, err := client.Search(ctx, vectordb.SearchRequest{
		CollectionName: "test_collection",
		Vector:         []float32{0.2, 0.1, 0.9, 0.7},
		Limit:          3,
		Filter:         vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("city", "London"))),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].ID.String())

	// An empty result set after filtering is valid, not an error.
	results, err = client.Search(ctx, vectordb.SearchRequest{
		CollectionName: "test_collection",
		Vector:         []float32{0.2, 0.1, 0.9, 0.7},
		Limit:          3,
		Filter:         vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("city", "Paris"))),
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_EuclideanRanksAscendingDistance(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.CreateCollection(ctx, "euclid", 2, vectordb.DistanceEuclid))
	require.NoError(t, client.UpsertPoints(ctx, "euclid", []vectordb.Point{
		{ID: vectordb.NumericID(1), Vector: []float32{0, 0}},
		{ID: vectordb.NumericID(2), Vector: []float32{3, 4}},
		{ID: vectordb.NumericID(3), Vector: []float32{1, 0}},
	}))

	results, err := client.Search(ctx, vectordb.SearchRequest{
		CollectionName: "euclid",
		Vector:         []float32{0, 0},
		Limit:          3,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Smaller distance outranks larger: best match first.
	assert.Equal(t, "1", results[0].ID.String())
	assert.Equal(t, "3", results[1].ID.String())
	assert.Equal(t, "2", results[2].ID.String())
}

func TestSearch_LocalValidation(t *testing.T) {
	client, engine := newTestClient(t)
	ctx := context.Background()
	before := engine.Requests()

	_, err := client.Search(ctx, vectordb.SearchRequest{CollectionName: "c", Vector: []float32{1}, Limit: 0})
	assert.ErrorIs(t, err, ErrSearch)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.Search(ctx, vectordb.SearchRequest{CollectionName: "c", Vector: nil, Limit: 3})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.Search(ctx, vectordb.SearchRequest{CollectionName: "", Vector: []float32{1}, Limit: 3})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, before, engine.Requests())
}

func TestSearch_FailureReturnsNoResults(t *testing.T) {
	client, _ := newTestClient(t)

	results, err := client.Search(context.Background(), vectordb.SearchRequest{
		CollectionName: "missing",
		Vector:         []float32{0.1, 0.2},
		Limit:          3,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSearch)
	assert.Nil(t, results, "failure must not return a partially populated result list")
}
