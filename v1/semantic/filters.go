package semantic

import (
	"strings"

	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/vectordb"
)

// payloadKeyword folds catalog names the way the relational filters compare
// them, so brand and type matches are case-insensitive on both sides.
func payloadKeyword(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// searchFilters mirrors the plan filters that have a payload counterpart.
// Other filters (model, location, dates, relations) only exist in Postgres and
// are not applied to the candidate set. It returns nil when nothing applies.
func searchFilters(f plan.FilterCriteria) *vectordb.FilterSet {
	var conds []vectordb.FilterCondition

	if f.Enabled != nil {
		conds = append(conds, vectordb.NewMatch(payloadEnabled, *f.Enabled))
	}
	if f.Status != nil {
		conds = append(conds, vectordb.NewMatch(payloadStatus, *f.Status))
	}
	switch {
	case len(f.Brands) > 0:
		values := make([]any, len(f.Brands))
		for i, b := range f.Brands {
			values[i] = payloadKeyword(b)
		}
		conds = append(conds, vectordb.NewMatchAny(payloadBrand, values...))
	case f.Brand != nil:
		conds = append(conds, vectordb.NewMatch(payloadBrand, payloadKeyword(*f.Brand)))
	}
	if f.Type != nil {
		conds = append(conds, vectordb.NewMatch(payloadType, payloadKeyword(*f.Type)))
	}

	fs := vectordb.NewFilterSet(vectordb.Must(conds...))
	if fs.IsEmpty() {
		return nil
	}
	return fs
}
