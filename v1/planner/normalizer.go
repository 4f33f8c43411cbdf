package planner

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/vocabulary"
)

// NormalizeOptions carries the request-scoped values the normalizer enforces.
type NormalizeOptions struct {
	// Pagination always replaces whatever the candidate carried.
	Pagination plan.Pagination
	// DefaultTopK is used when the candidate names no usable topK.
	DefaultTopK int
	// Question seeds semantic.query for search plans that lack one.
	Question string
}

// Normalize coerces a loosely typed plan candidate into a canonical Plan. It never
// fails; whatever it cannot repair is left for plan.Validate to reject. Feeding a
// normalized plan back through Normalize (via plan.ToMap) yields the same plan.
func Normalize(raw map[string]any, opts NormalizeOptions) *plan.Plan {
	if raw == nil {
		raw = map[string]any{}
	}

	topK := opts.DefaultTopK
	if topK <= 0 {
		topK = defaultTopK
	}

	p := &plan.Plan{
		Intent:     normalizeIntent(raw["intent"]),
		Pagination: opts.Pagination,
	}
	p.Filters = normalizeFilters(asMap(raw["filters"]))

	if p.Intent == plan.IntentMissing {
		p.Missing = normalizeMissing(raw["missing"])
	}
	if p.Intent == plan.IntentGroupCount {
		dim := normalizeGroupBy(raw["groupBy"])
		p.GroupBy = &dim
	}

	p.Semantic = normalizeSemantic(asMap(raw["semantic"]), topK)
	if p.Intent == plan.IntentSearch && p.Semantic.Query == nil {
		if q := strings.TrimSpace(opts.Question); q != "" {
			p.Semantic.Query = &q
		}
	}

	p.Sort = normalizeSort(raw["sort"])
	return p
}

const defaultTopK = 10

func normalizeIntent(v any) plan.Intent {
	s, _ := unwrapString(v)
	s = strings.ToLower(strings.ReplaceAll(s, "-", "_"))
	switch s {
	case "groupcount", "group":
		s = string(plan.IntentGroupCount)
	}
	return plan.Intent(s)
}

func normalizeFilters(m map[string]any) plan.FilterCriteria {
	var f plan.FilterCriteria

	// A scalar brand sent next to brands joins the set instead of being lost.
	brands := mergeDistinct(distinctStrings(m["brand"]), distinctStrings(m["brands"]))
	switch {
	case len(brands) > 1:
		f.Brands = brands
	case len(brands) == 1:
		f.Brand = &brands[0]
	}

	f.Type = optionalString(m["type"])
	f.Model = optionalString(m["model"])
	f.SerialNumber = optionalString(m["serialNumber"])
	f.ActiveNumber = optionalString(m["activeNumber"])
	f.Location = optionalString(m["location"])

	if s, ok := unwrapString(m["status"]); ok {
		if st, ok := vocabulary.ParseStatus(s); ok {
			f.Status = &st
		}
	}

	// An explicit null turns the filter off; anything else unusable keeps the default.
	enabled, present := m["enabled"]
	switch {
	case present && enabled == nil:
		f.Enabled = nil
	default:
		b, ok := coerceBool(enabled)
		if !ok {
			b = true
		}
		f.Enabled = &b
	}

	if b, ok := coerceBool(m["hasInvoice"]); ok {
		f.HasInvoice = &b
	}
	if b, ok := coerceBool(m["hasPurchaseOrder"]); ok {
		f.HasPurchaseOrder = &b
	}

	dateField := vocabulary.DateFieldCreatedAt
	if s, ok := unwrapString(m["dateField"]); ok {
		if field, ok := canonical(s, vocabulary.DateFields); ok {
			dateField = field
		}
	}
	f.DateField = &dateField

	f.DateFrom = isoDate(m["dateFrom"])
	f.DateTo = isoDate(m["dateTo"])
	if f.DateFrom != nil && f.DateTo != nil && *f.DateFrom > *f.DateTo {
		f.DateFrom, f.DateTo = f.DateTo, f.DateFrom
	}

	return f
}

func normalizeMissing(v any) *plan.MissingSpec {
	var field string
	if m := asMap(v); m != nil {
		field, _ = unwrapString(m["field"])
	} else {
		field, _ = unwrapString(v)
	}

	canonicalField, ok := canonical(field, vocabulary.MissingFields)
	if !ok {
		return nil
	}
	target, _ := vocabulary.Missing(canonicalField)
	return &plan.MissingSpec{Kind: target.Kind, Field: canonicalField}
}

var groupSynonyms = map[string]string{
	"marca": vocabulary.GroupByBrand, "marcas": vocabulary.GroupByBrand, "brands": vocabulary.GroupByBrand,
	"tipo": vocabulary.GroupByType, "tipos": vocabulary.GroupByType, "types": vocabulary.GroupByType,
	"modelo": vocabulary.GroupByModel, "modelos": vocabulary.GroupByModel, "models": vocabulary.GroupByModel,
	"ubicacion": vocabulary.GroupByLocation, "ubicaciones": vocabulary.GroupByLocation, "locations": vocabulary.GroupByLocation,
	"estado": vocabulary.GroupByStatus, "estatus": vocabulary.GroupByStatus, "estados": vocabulary.GroupByStatus,
}

func normalizeGroupBy(v any) string {
	s, ok := unwrapString(v)
	if !ok {
		return vocabulary.DefaultGroupBy
	}
	s = vocabulary.Normalize(s)
	if vocabulary.IsGroupDimension(s) {
		return s
	}
	if dim, ok := groupSynonyms[s]; ok {
		return dim
	}
	return vocabulary.DefaultGroupBy
}

func normalizeSemantic(m map[string]any, defaultK int) plan.SemanticSpec {
	spec := plan.SemanticSpec{
		Query: optionalString(m["query"]),
		TopK:  defaultK,
	}
	if k, ok := coerceInt(m["topK"]); ok && k > 0 {
		spec.TopK = k
	}
	if spec.TopK > plan.MaxTopK {
		spec.TopK = plan.MaxTopK
	}
	return spec
}

func normalizeSort(v any) []plan.SortSpec {
	var entries []any
	switch t := v.(type) {
	case []any:
		entries = t
	case map[string]any:
		entries = []any{t}
	}

	var out []plan.SortSpec
	for _, e := range entries {
		m := asMap(e)
		if m == nil {
			continue
		}
		s, ok := unwrapString(m["field"])
		if !ok {
			continue
		}
		field, ok := canonical(s, vocabulary.DateFields)
		if !ok {
			continue
		}
		dir := vocabulary.SortDesc
		if d, ok := unwrapString(m["dir"]); ok && strings.EqualFold(d, vocabulary.SortAsc) {
			dir = vocabulary.SortAsc
		}
		out = append(out, plan.SortSpec{Field: field, Dir: dir})
	}

	if len(out) == 0 {
		return plan.DefaultSort()
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Coercion helpers
// ─────────────────────────────────────────────────────────────────────────────

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// unwrap reduces arrays to their first element and objects to their most
// name-like value, so {"brand": [{"name": "HP"}]} reads as "HP".
func unwrap(v any) any {
	for depth := 0; depth < 4; depth++ {
		switch t := v.(type) {
		case []any:
			if len(t) == 0 {
				return nil
			}
			v = t[0]
		case map[string]any:
			v = pickObjectValue(t)
		default:
			return v
		}
	}
	return v
}

func pickObjectValue(m map[string]any) any {
	for _, key := range []string{"name", "value", "id", "label"} {
		if v, ok := m[key]; ok {
			return v
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	return m[keys[0]]
}

func unwrapString(v any) (string, bool) {
	switch t := unwrap(v).(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

// optionalString drops empty, "null" and overlong values.
func optionalString(v any) *string {
	s, ok := unwrapString(v)
	if !ok || strings.EqualFold(s, "null") || !fitsFilter(s) {
		return nil
	}
	return &s
}

func fitsFilter(s string) bool {
	return utf8.RuneCountInString(s) <= plan.MaxFilterValueLength
}

// distinctStrings flattens a scalar or array into distinct non-empty strings,
// comparing case-insensitively and keeping first spellings.
func distinctStrings(v any) []string {
	var items []any
	if arr, ok := v.([]any); ok {
		items = arr
	} else if v != nil {
		items = []any{v}
	}
	return mergeDistinct(nil, stringsOf(items))
}

func stringsOf(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := unwrapString(it); ok && fitsFilter(s) {
			out = append(out, s)
		}
	}
	return out
}

func mergeDistinct(base []string, more []string) []string {
	seen := make(map[string]struct{}, len(base)+len(more))
	out := make([]string, 0, len(base)+len(more))
	for _, s := range append(append([]string{}, base...), more...) {
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func coerceBool(v any) (bool, bool) {
	switch t := unwrap(v).(type) {
	case bool:
		return t, true
	case float64:
		switch t {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "si", "sí", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
	}
	return false, false
}

func coerceInt(v any) (int, bool) {
	switch t := unwrap(v).(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}

// isoDate accepts YYYY-MM-DD, or a longer timestamp whose first ten characters are one.
func isoDate(v any) *string {
	s, ok := unwrapString(v)
	if !ok || len(s) < 10 {
		return nil
	}
	s = s[:10]
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return nil
	}
	return &s
}

// canonical matches s against allowed ignoring case and underscores, so
// "created_at" resolves to "createdAt".
func canonical(s string, allowed []string) (string, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for _, a := range allowed {
		if strings.ToLower(a) == key {
			return a, true
		}
	}
	return "", false
}

func describeCandidate(raw map[string]any) string {
	intent, _ := unwrapString(raw["intent"])
	return fmt.Sprintf("intent=%q keys=%d", intent, len(raw))
}
