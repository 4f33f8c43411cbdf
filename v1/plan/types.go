package plan

import (
	"encoding/json"
	"fmt"

	"github.com/resguardo/inventory-query/v1/vocabulary"
)

// Intent selects how a plan is executed.
type Intent string

const (
	IntentList       Intent = "list"
	IntentCount      Intent = "count"
	IntentGroupCount Intent = "group_count"
	IntentMissing    Intent = "missing"
	IntentSearch     Intent = "search"
)

// Intents lists every valid intent.
var Intents = []Intent{IntentList, IntentCount, IntentGroupCount, IntentMissing, IntentSearch}

// MaxTopK bounds the number of candidates requested from the vector index.
const MaxTopK = 100

// MaxFilterValueLength bounds free-text filter values, in characters. It matches
// the max=200 tags on FilterCriteria.
const MaxFilterValueLength = 200

// Plan is the validated, structured form of a question.
type Plan struct {
	Intent     Intent         `json:"intent" validate:"required,oneof=list count group_count missing search"`
	Filters    FilterCriteria `json:"filters"`
	Missing    *MissingSpec   `json:"missing,omitempty"`
	GroupBy    *string        `json:"groupBy,omitempty" validate:"omitempty,oneof=brand type model location status"`
	Semantic   SemanticSpec   `json:"semantic"`
	Pagination Pagination     `json:"pagination"`
	Sort       []SortSpec     `json:"sort" validate:"required,min=1,dive"`
}

// FilterCriteria narrows the inventory records a plan addresses. Every field is optional.
type FilterCriteria struct {
	Brand            *string  `json:"brand,omitempty" validate:"omitempty,min=1,max=200"`
	Brands           []string `json:"brands,omitempty" validate:"omitempty,min=2,dive,required,max=200"`
	Type             *string  `json:"type,omitempty" validate:"omitempty,min=1,max=200"`
	Model            *string  `json:"model,omitempty" validate:"omitempty,min=1,max=200"`
	SerialNumber     *string  `json:"serialNumber,omitempty" validate:"omitempty,min=1,max=200"`
	ActiveNumber     *string  `json:"activeNumber,omitempty" validate:"omitempty,min=1,max=200"`
	Status           *string  `json:"status,omitempty" validate:"omitempty,oneof=ALTA BAJA PROPUESTA_BAJA"`
	Enabled          *bool    `json:"enabled"`
	Location         *string  `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	HasInvoice       *bool    `json:"hasInvoice,omitempty"`
	HasPurchaseOrder *bool    `json:"hasPurchaseOrder,omitempty"`
	DateField        *string  `json:"dateField,omitempty" validate:"omitempty,oneof=createdAt updatedAt receptionDate"`
	DateFrom         *string  `json:"dateFrom,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo           *string  `json:"dateTo,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// MissingSpec names the field or relation a missing-data report checks.
type MissingSpec struct {
	Kind  string `json:"kind" validate:"required,oneof=field relation"`
	Field string `json:"field" validate:"required,oneof=serialNumber activeNumber internalFolio receptionDate location invoice purchaseOrder"`
}

// SemanticSpec carries the similarity query used by the search intent.
type SemanticSpec struct {
	Query *string `json:"query"`
	TopK  int     `json:"topK" validate:"min=1,max=100"`
}

// Pagination is always the caller's page and limit, never the model's.
type Pagination struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1"`
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SortSpec orders list results.
type SortSpec struct {
	Field string `json:"field" validate:"required,oneof=createdAt updatedAt receptionDate"`
	Dir   string `json:"dir" validate:"required,oneof=asc desc"`
}

// DefaultSort is the ordering applied when a plan names none.
func DefaultSort() []SortSpec {
	return []SortSpec{{Field: vocabulary.DefaultSortField, Dir: vocabulary.SortDesc}}
}

// New returns a plan with the defaults every intent shares: logically deleted
// records excluded, default ordering and an empty semantic query.
func New(intent Intent, page Pagination, topK int) *Plan {
	return &Plan{
		Intent:     intent,
		Filters:    FilterCriteria{Enabled: Bool(true)},
		Semantic:   SemanticSpec{TopK: topK},
		Pagination: page,
		Sort:       DefaultSort(),
	}
}

// ToMap renders the plan as the loosely typed map the normalizer consumes.
func ToMap(p *Plan) (map[string]any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return out, nil
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
