package vectordb

// FilterCondition is the interface all filter conditions implement.
// Engine client packages convert these to their native filter format.
type FilterCondition interface {
	// IsFilterCondition is a marker method to ensure type safety.
	IsFilterCondition()
}

// FilterSet supports Must (AND), Should (OR), and MustNot (NOT) clauses.
// Use with SearchRequest.Filter to restrict search candidates by payload.
//
// Example:
//
//	filter := &FilterSet{
//	    Must: &ConditionSet{
//	        Conditions: []FilterCondition{
//	            MatchCondition{Field: "city", Value: "London"},
//	        },
//	    },
//	}
type FilterSet struct {
	// Must: all conditions must match (AND).
	Must *ConditionSet
	// Should: at least one condition must match (OR).
	Should *ConditionSet
	// MustNot: none of the conditions may match (NOT).
	MustNot *ConditionSet
}

// ConditionSet holds a group of conditions for a single clause.
type ConditionSet struct {
	Conditions []FilterCondition
}

// MatchCondition is an exact match on a payload field (field = value).
// Supports string, bool and integer values.
type MatchCondition struct {
	Field string
	Value any
}

func (MatchCondition) IsFilterCondition() {}

// MatchAnyCondition matches if the field equals any of the given values
// (the IN operator).
type MatchAnyCondition struct {
	Field  string
	Values []any
}

func (MatchAnyCondition) IsFilterCondition() {}

// NumericRange defines bounds for numeric filtering. Nil bounds are open.
type NumericRange struct {
	Gt  *float64 // greater than (exclusive)
	Gte *float64 // greater than or equal (inclusive)
	Lt  *float64 // less than (exclusive)
	Lte *float64 // less than or equal (inclusive)
}

// RangeCondition filters a numeric payload field by range.
type RangeCondition struct {
	Field string
	Range NumericRange
}

func (RangeCondition) IsFilterCondition() {}

// ── Convenience constructors ─────────────────────────────────────────────────

// NewFilterSet assembles a FilterSet from clause builders:
//
//	NewFilterSet(Must(NewMatch("city", "Berlin")), MustNot(NewMatch("archived", true)))
func NewFilterSet(clauses ...func(*FilterSet)) *FilterSet {
	fs := &FilterSet{}
	for _, clause := range clauses {
		clause(fs)
	}
	return fs
}

// Must adds AND conditions to a FilterSet.
func Must(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.Must = appendConditions(fs.Must, conditions)
	}
}

// Should adds OR conditions to a FilterSet.
func Should(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.Should = appendConditions(fs.Should, conditions)
	}
}

// MustNot adds NOT conditions to a FilterSet.
func MustNot(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.MustNot = appendConditions(fs.MustNot, conditions)
	}
}

func appendConditions(cs *ConditionSet, conditions []FilterCondition) *ConditionSet {
	if cs == nil {
		cs = &ConditionSet{}
	}
	cs.Conditions = append(cs.Conditions, conditions...)
	return cs
}

// NewMatch builds an exact-match condition.
func NewMatch(field string, value any) MatchCondition {
	return MatchCondition{Field: field, Value: value}
}

// NewMatchAny builds an IN condition.
func NewMatchAny(field string, values ...any) MatchAnyCondition {
	return MatchAnyCondition{Field: field, Values: values}
}

// NewRange builds a numeric range condition.
func NewRange(field string, r NumericRange) RangeCondition {
	return RangeCondition{Field: field, Range: r}
}

// Empty reports whether the filter set carries no conditions at all.
// An empty filter is equivalent to no filter.
func (fs *FilterSet) Empty() bool {
	if fs == nil {
		return true
	}
	return fs.Must.empty() && fs.Should.empty() && fs.MustNot.empty()
}

func (cs *ConditionSet) empty() bool {
	return cs == nil || len(cs.Conditions) == 0
}
