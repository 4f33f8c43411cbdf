package planner

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resguardo/inventory-query/v1/plan"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func normalizeJSON(t *testing.T, s string) *plan.Plan {
	t.Helper()
	return Normalize(decode(t, s), NormalizeOptions{Pagination: firstPage, DefaultTopK: 10, Question: "pregunta original"})
}

func TestNormalizeUnwrapsArraysAndObjects(t *testing.T) {
	p := normalizeJSON(t, `{
		"intent": ["COUNT"],
		"filters": {
			"type": [{"name": "Laptop"}],
			"brand": ["HP", "Dell", "hp"],
			"location": {"value": "Bodega 2"}
		}
	}`)

	assert.Equal(t, plan.IntentCount, p.Intent)
	assert.Equal(t, "Laptop", *p.Filters.Type)
	assert.Equal(t, "Bodega 2", *p.Filters.Location)
	assert.Nil(t, p.Filters.Brand)
	assert.Equal(t, []string{"HP", "Dell"}, p.Filters.Brands)
}

func TestNormalizeSingleBrandListCollapses(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "list", "filters": {"brands": ["Avigilon"]}}`)
	assert.Nil(t, p.Filters.Brands)
	assert.Equal(t, "Avigilon", *p.Filters.Brand)
}

func TestNormalizeMergesScalarBrandIntoBrands(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "list", "filters": {"brand": "Avigilon", "brands": ["HP", "Dell"]}}`)
	assert.Nil(t, p.Filters.Brand)
	assert.Equal(t, []string{"Avigilon", "HP", "Dell"}, p.Filters.Brands)

	p = normalizeJSON(t, `{"intent": "list", "filters": {"brand": "HP", "brands": ["Dell"]}}`)
	assert.Nil(t, p.Filters.Brand)
	assert.Equal(t, []string{"HP", "Dell"}, p.Filters.Brands)

	p = normalizeJSON(t, `{"intent": "list", "filters": {"brand": "hp", "brands": ["HP"]}}`)
	assert.Nil(t, p.Filters.Brands)
	assert.Equal(t, "hp", *p.Filters.Brand)
}

func TestNormalizeDropsOverlongValues(t *testing.T) {
	long := strings.Repeat("x", plan.MaxFilterValueLength+1)
	exact := strings.Repeat("ñ", plan.MaxFilterValueLength)
	raw := map[string]any{
		"intent": "list",
		"filters": map[string]any{
			"brand":        long,
			"model":        long,
			"location":     exact,
			"serialNumber": long,
		},
	}

	p := Normalize(raw, NormalizeOptions{Pagination: firstPage, DefaultTopK: 10})
	assert.Nil(t, p.Filters.Brand)
	assert.Nil(t, p.Filters.Model)
	assert.Nil(t, p.Filters.SerialNumber)
	require.NotNil(t, p.Filters.Location)
	assert.Equal(t, exact, *p.Filters.Location)
	require.NoError(t, plan.Validate(p, 100))
}

func TestNormalizeBooleans(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "list", "filters": {"hasInvoice": "false", "hasPurchaseOrder": "maybe", "enabled": "0"}}`)
	assert.Equal(t, false, *p.Filters.HasInvoice)
	assert.Nil(t, p.Filters.HasPurchaseOrder)
	assert.Equal(t, false, *p.Filters.Enabled)

	p = normalizeJSON(t, `{"intent": "list", "filters": {}}`)
	assert.Equal(t, true, *p.Filters.Enabled)

	p = normalizeJSON(t, `{"intent": "list", "filters": {"enabled": null}}`)
	assert.Nil(t, p.Filters.Enabled)

	p = normalizeJSON(t, `{"intent": "list", "filters": {"enabled": "quizá"}}`)
	assert.Equal(t, true, *p.Filters.Enabled)
}

func TestNormalizeStatus(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "list", "filters": {"status": "propuesta de baja"}}`)
	assert.Equal(t, "PROPUESTA_BAJA", *p.Filters.Status)

	p = normalizeJSON(t, `{"intent": "list", "filters": {"status": "vendido"}}`)
	assert.Nil(t, p.Filters.Status)
}

func TestNormalizeDates(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "list", "filters": {
		"dateField": "reception_date",
		"dateFrom": "2024-12-31T00:00:00Z",
		"dateTo": "2024-01-01"
	}}`)
	assert.Equal(t, "receptionDate", *p.Filters.DateField)
	assert.Equal(t, "2024-01-01", *p.Filters.DateFrom)
	assert.Equal(t, "2024-12-31", *p.Filters.DateTo)

	p = normalizeJSON(t, `{"intent": "list", "filters": {"dateField": "deletedAt", "dateFrom": "", "dateTo": "2024-02-30"}}`)
	assert.Equal(t, "createdAt", *p.Filters.DateField)
	assert.Nil(t, p.Filters.DateFrom)
	assert.Nil(t, p.Filters.DateTo)
}

func TestNormalizeOverwritesPagination(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "list", "pagination": {"page": 9, "limit": 5000}}`)
	assert.Equal(t, firstPage, p.Pagination)
}

func TestNormalizeSort(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "list", "sort": [{"field": "created_at", "dir": "ASC"}, {"field": "price"}]}`)
	assert.Equal(t, []plan.SortSpec{{Field: "createdAt", Dir: "asc"}}, p.Sort)

	p = normalizeJSON(t, `{"intent": "list", "sort": {"field": "updatedAt", "dir": "sideways"}}`)
	assert.Equal(t, []plan.SortSpec{{Field: "updatedAt", Dir: "desc"}}, p.Sort)

	p = normalizeJSON(t, `{"intent": "list", "sort": []}`)
	assert.Equal(t, plan.DefaultSort(), p.Sort)
}

func TestNormalizeSemantic(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "search", "semantic": {"topK": 1000}}`)
	assert.Equal(t, plan.MaxTopK, p.Semantic.TopK)
	require.NotNil(t, p.Semantic.Query)
	assert.Equal(t, "pregunta original", *p.Semantic.Query)

	p = normalizeJSON(t, `{"intent": "search", "semantic": {"query": "cámaras domo", "topK": "5"}}`)
	assert.Equal(t, 5, p.Semantic.TopK)
	assert.Equal(t, "cámaras domo", *p.Semantic.Query)

	p = normalizeJSON(t, `{"intent": "list"}`)
	assert.Equal(t, 10, p.Semantic.TopK)
	assert.Nil(t, p.Semantic.Query)
}

func TestNormalizeGroupBy(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "group_count"}`)
	assert.Equal(t, "location", *p.GroupBy)

	p = normalizeJSON(t, `{"intent": "groupCount", "groupBy": "Marca"}`)
	assert.Equal(t, plan.IntentGroupCount, p.Intent)
	assert.Equal(t, "brand", *p.GroupBy)

	p = normalizeJSON(t, `{"intent": "list", "groupBy": "brand"}`)
	assert.Nil(t, p.GroupBy)
}

func TestNormalizeMissing(t *testing.T) {
	p := normalizeJSON(t, `{"intent": "missing", "missing": {"field": "serial_number"}}`)
	assert.Equal(t, &plan.MissingSpec{Kind: "field", Field: "serialNumber"}, p.Missing)

	p = normalizeJSON(t, `{"intent": "missing", "missing": {"kind": "relation", "field": "serialNumber"}}`)
	assert.Equal(t, "field", p.Missing.Kind)

	p = normalizeJSON(t, `{"intent": "missing", "missing": {"field": "color"}}`)
	assert.Nil(t, p.Missing)

	p = normalizeJSON(t, `{"intent": "list", "missing": {"field": "location"}}`)
	assert.Nil(t, p.Missing)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		`{"intent": "count", "filters": {"brand": "HP", "status": "alta", "enabled": null}}`,
		`{"intent": "group_count", "groupBy": "model", "filters": {"brands": ["HP", "Dell"]}}`,
		`{"intent": "missing", "missing": {"field": "invoice"}, "filters": {"hasInvoice": false}}`,
		`{"intent": "search", "semantic": {"query": "switch poe", "topK": 7}, "sort": [{"field": "updatedAt", "dir": "asc"}]}`,
		`{"intent": "list", "filters": {"dateFrom": "2024-05-01", "dateTo": "2024-05-31", "dateField": "updatedAt"}}`,
	}
	opts := NormalizeOptions{Pagination: firstPage, DefaultTopK: 10, Question: "q"}

	for _, in := range inputs {
		once := Normalize(decode(t, in), opts)
		raw, err := plan.ToMap(once)
		require.NoError(t, err)
		twice := Normalize(raw, opts)
		assert.Equal(t, once, twice, in)
	}
}

func TestNormalizeNilCandidate(t *testing.T) {
	p := Normalize(nil, NormalizeOptions{Pagination: firstPage})
	assert.Equal(t, plan.Intent(""), p.Intent)
	assert.Equal(t, defaultTopK, p.Semantic.TopK)
	assert.Error(t, plan.Validate(p, 100))
}
