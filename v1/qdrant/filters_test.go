package qdrant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

func TestBuildFilter_NilAndEmpty(t *testing.T) {
	filter, err := buildFilter(nil)
	require.NoError(t, err)
	assert.Nil(t, filter)

	filter, err = buildFilter(&vectordb.FilterSet{})
	require.NoError(t, err)
	assert.Nil(t, filter)

	filter, err = buildFilter(&vectordb.FilterSet{Must: &vectordb.ConditionSet{}})
	require.NoError(t, err)
	assert.Nil(t, filter)
}

func TestBuildFilter_MustMatch(t *testing.T) {
	filter, err := buildFilter(vectordb.NewFilterSet(
		vectordb.Must(vectordb.NewMatch("city", "London")),
	))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"must": []map[string]any{
			{"key": "city", "match": map[string]any{"value": "London"}},
		},
	}, filter)
}

func TestBuildFilter_AllClauses(t *testing.T) {
	filter, err := buildFilter(vectordb.NewFilterSet(
		vectordb.Must(vectordb.NewMatch("status", "published")),
		vectordb.Should(
			vectordb.NewMatch("tag", "ml"),
			vectordb.NewMatch("tag", "ai"),
		),
		vectordb.MustNot(vectordb.NewMatch("archived", true)),
	))
	require.NoError(t, err)

	assert.Len(t, filter["must"], 1)
	assert.Len(t, filter["should"], 2)
	assert.Len(t, filter["must_not"], 1)
}

func TestBuildFilter_MatchAny(t *testing.T) {
	filter, err := buildFilter(vectordb.NewFilterSet(
		vectordb.Must(vectordb.NewMatchAny("city", "London", "Berlin")),
	))
	require.NoError(t, err)

	must := filter["must"].([]map[string]any)
	require.Len(t, must, 1)
	assert.Equal(t, map[string]any{"any": []any{"London", "Berlin"}}, must[0]["match"])
}

func TestBuildFilter_RangeBounds(t *testing.T) {
	gte, lt := 100.0, 500.0
	filter, err := buildFilter(vectordb.NewFilterSet(
		vectordb.Must(vectordb.NewRange("price", vectordb.NumericRange{Gte: &gte, Lt: &lt})),
	))
	require.NoError(t, err)

	must := filter["must"].([]map[string]any)
	require.Len(t, must, 1)
	assert.Equal(t, map[string]any{"gte": 100.0, "lt": 500.0}, must[0]["range"],
		"only the set bounds appear on the wire")
}

// unknownCondition simulates a condition type this engine cannot translate.
type unknownCondition struct{}

func (unknownCondition) IsFilterCondition() {}

func TestBuildFilter_UnsupportedCondition(t *testing.T) {
	_, err := buildFilter(vectordb.NewFilterSet(vectordb.Must(unknownCondition{})))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
