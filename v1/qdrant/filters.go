package qdrant

import (
	"fmt"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

// buildFilter converts an engine-agnostic FilterSet into Qdrant's REST
// filter grammar:
//
//	{ "must": [ { "key": "city", "match": { "value": "London" } } ], ... }
//
// A nil or empty filter set yields nil — no filter clause on the wire.
func buildFilter(fs *vectordb.FilterSet) (map[string]any, error) {
	if fs.Empty() {
		return nil, nil
	}

	filter := make(map[string]any, 3)

	must, err := buildConditions(fs.Must)
	if err != nil {
		return nil, err
	}
	if len(must) > 0 {
		filter["must"] = must
	}

	should, err := buildConditions(fs.Should)
	if err != nil {
		return nil, err
	}
	if len(should) > 0 {
		filter["should"] = should
	}

	mustNot, err := buildConditions(fs.MustNot)
	if err != nil {
		return nil, err
	}
	if len(mustNot) > 0 {
		filter["must_not"] = mustNot
	}

	return filter, nil
}

// buildConditions converts one clause's conditions to their wire form.
func buildConditions(cs *vectordb.ConditionSet) ([]map[string]any, error) {
	if cs == nil {
		return nil, nil
	}

	conditions := make([]map[string]any, 0, len(cs.Conditions))
	for _, c := range cs.Conditions {
		switch cond := c.(type) {
		case vectordb.MatchCondition:
			conditions = append(conditions, map[string]any{
				"key":   cond.Field,
				"match": map[string]any{"value": cond.Value},
			})
		case vectordb.MatchAnyCondition:
			conditions = append(conditions, map[string]any{
				"key":   cond.Field,
				"match": map[string]any{"any": cond.Values},
			})
		case vectordb.RangeCondition:
			conditions = append(conditions, map[string]any{
				"key":   cond.Field,
				"range": buildRange(cond.Range),
			})
		default:
			return nil, fmt.Errorf("%w: unsupported filter condition %T", ErrInvalidArgument, c)
		}
	}
	return conditions, nil
}

func buildRange(r vectordb.NumericRange) map[string]any {
	bounds := make(map[string]any, 4)
	if r.Gt != nil {
		bounds["gt"] = *r.Gt
	}
	if r.Gte != nil {
		bounds["gte"] = *r.Gte
	}
	if r.Lt != nil {
		bounds["lt"] = *r.Lt
	}
	if r.Lte != nil {
		bounds["lte"] = *r.Lte
	}
	return bounds
}
