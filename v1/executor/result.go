package executor

import (
	"encoding/json"

	"github.com/resguardo/inventory-query/v1/inventory"
	"github.com/resguardo/inventory-query/v1/plan"
)

// ResultType tags the shape of a Result.
type ResultType string

const (
	TypeList        ResultType = "list"
	TypeAggregation ResultType = "aggregation"
	TypeMixed       ResultType = "mixed"
)

// MetricCount is the only aggregation metric.
const MetricCount = "count"

// Result is the envelope returned for one executed plan. Which fields are set
// depends on Type:
//   - list: Total, Items, Page, Limit, HasMore
//   - aggregation: Metric, Total and, for grouped counts, GroupBy and Rows
//   - mixed: Total, Items, Page, Limit, HasMore
type Result struct {
	Type    ResultType
	Metric  string
	Total   int64
	GroupBy string
	Rows    []inventory.GroupRow
	Items   []inventory.Item
	Page    int
	Limit   int
	HasMore bool
}

// HasMore reports whether rows exist past the requested page.
func HasMore(total int64, page plan.Pagination) bool {
	return total > int64(page.Page)*int64(page.Limit)
}

func newPage(t ResultType, total int64, items []inventory.Item, page plan.Pagination) *Result {
	if items == nil {
		items = []inventory.Item{}
	}
	return &Result{
		Type:    t,
		Total:   total,
		Items:   items,
		Page:    page.Page,
		Limit:   page.Limit,
		HasMore: HasMore(total, page),
	}
}

// Fields returns the envelope as the flat map it is serialized to, holding only
// the keys that belong to the result's type.
func (r *Result) Fields() map[string]any {
	out := map[string]any{
		"type":  r.Type,
		"total": r.Total,
	}
	switch r.Type {
	case TypeAggregation:
		out["metric"] = r.Metric
		if r.GroupBy != "" {
			out["groupBy"] = r.GroupBy
			rows := r.Rows
			if rows == nil {
				rows = []inventory.GroupRow{}
			}
			out["rows"] = rows
		}
	default:
		out["items"] = r.Items
		out["page"] = r.Page
		out["limit"] = r.Limit
		out["hasMore"] = r.HasMore
	}
	return out
}

// MarshalJSON encodes the envelope as Fields.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}
