package vectordb

// FilterCondition is the interface all filter conditions must implement.
// Each database adapter converts these to its native filter format.
type FilterCondition interface {
	IsFilterCondition()
}

// FilterSet holds the Must (AND) clause of a payload filter.
//
// Example:
//
//	filters := &FilterSet{
//	    Must: &ConditionSet{
//	        Conditions: []FilterCondition{
//	            &MatchCondition{Field: "enabled", Value: true},
//	        },
//	    },
//	}
type FilterSet struct {
	Must *ConditionSet `json:"must,omitempty"`
}

// ConditionSet holds a group of conditions for a single clause.
type ConditionSet struct {
	Conditions []FilterCondition `json:"conditions,omitempty"`
}

// MatchCondition is an exact match on a payload field.
// Supports string, bool and integer values.
type MatchCondition struct {
	Field string `json:"field"`
	Value any    `json:"equalTo"`
}

func (c *MatchCondition) IsFilterCondition() {}

// MatchAnyCondition matches if the field holds one of Values.
// Values must be all strings or all integers.
type MatchAnyCondition struct {
	Field  string `json:"field"`
	Values []any  `json:"anyOf"`
}

func (c *MatchAnyCondition) IsFilterCondition() {}

// IsEmpty reports whether fs carries no conditions at all.
func (fs *FilterSet) IsEmpty() bool {
	return fs == nil || fs.Must == nil || len(fs.Must.Conditions) == 0
}
