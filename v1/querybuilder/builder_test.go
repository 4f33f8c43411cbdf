package querybuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resguardo/inventory-query/v1/plan"
)

func newPlan(intent plan.Intent) *plan.Plan {
	return plan.New(intent, plan.Pagination{Page: 1, Limit: 20}, 10)
}

func TestBuildCountSingleBrand(t *testing.T) {
	p := newPlan(plan.IntentCount)
	p.Filters.Brand = plan.String("Avigilon")

	stmt := BuildCount(p)

	assert.True(t, strings.HasPrefix(stmt.SQL, "SELECT COUNT(*) AS total FROM inventories i JOIN models m"))
	assert.Contains(t, stmt.SQL, " WHERE i.enabled = $1 AND LOWER(b.name) = LOWER($2)")
	assert.Equal(t, []any{true, "Avigilon"}, stmt.Args)
	assert.NotContains(t, stmt.SQL, "Avigilon")
}

func TestMultiBrandIsParenthesizedOrGroup(t *testing.T) {
	p := newPlan(plan.IntentList)
	p.Filters.Enabled = nil
	p.Filters.Brands = []string{"HP", "AVIGILON"}
	p.Filters.Type = plan.String("Laptop")

	stmt := BuildCount(p)

	assert.Contains(t, stmt.SQL, "WHERE (LOWER(b.name) = LOWER($1) OR LOWER(b.name) = LOWER($2)) AND LOWER(t.name) = LOWER($3)")
	assert.Equal(t, []any{"HP", "AVIGILON", "Laptop"}, stmt.Args)
}

func TestSubstringFiltersEscapeWildcards(t *testing.T) {
	p := newPlan(plan.IntentList)
	p.Filters.Enabled = nil
	p.Filters.Model = plan.String("50%_x")
	p.Filters.Location = plan.String("bodega")

	stmt := BuildCount(p)

	assert.Contains(t, stmt.SQL, "m.name ILIKE $1 AND l.name ILIKE $2")
	assert.Equal(t, []any{`%50\%\_x%`, "%bodega%"}, stmt.Args)
}

func TestRelationPresenceAndDates(t *testing.T) {
	p := newPlan(plan.IntentList)
	p.Filters.Enabled = nil
	p.Filters.HasInvoice = plan.Bool(false)
	p.Filters.HasPurchaseOrder = plan.Bool(true)
	p.Filters.DateField = plan.String("receptionDate")
	p.Filters.DateFrom = plan.String("2024-10-01")
	p.Filters.DateTo = plan.String("2024-11-30")

	stmt := BuildCount(p)

	assert.Contains(t, stmt.SQL, "i.invoice_id IS NULL AND i.purchase_order_id IS NOT NULL")
	assert.Contains(t, stmt.SQL, "i.reception_date >= $1::date AND i.reception_date < $2::date + INTERVAL '1 day'")
	assert.Equal(t, []any{"2024-10-01", "2024-11-30"}, stmt.Args)
}

func TestUnknownDateFieldFallsBackToCreatedAt(t *testing.T) {
	p := newPlan(plan.IntentList)
	p.Filters.Enabled = nil
	p.Filters.DateField = plan.String("deletedAt")
	p.Filters.DateFrom = plan.String("2024-01-01")

	stmt := BuildCount(p)
	assert.Contains(t, stmt.SQL, "i.created_at >= $1::date")
}

func TestMissingPredicates(t *testing.T) {
	cases := map[string]struct {
		spec plan.MissingSpec
		want string
	}{
		"text field":       {plan.MissingSpec{Kind: "field", Field: "serialNumber"}, "(i.serial_number IS NULL OR i.serial_number = '')"},
		"non-string field": {plan.MissingSpec{Kind: "field", Field: "receptionDate"}, "i.reception_date IS NULL"},
		"relation":         {plan.MissingSpec{Kind: "relation", Field: "location"}, "i.location_id IS NULL"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := newPlan(plan.IntentMissing)
			spec := tc.spec
			p.Missing = &spec
			stmt := BuildCount(p)
			assert.True(t, strings.HasSuffix(stmt.SQL, " AND "+tc.want), stmt.SQL)
		})
	}
}

func TestBuildListPaginationAndSort(t *testing.T) {
	p := newPlan(plan.IntentList)
	p.Pagination = plan.Pagination{Page: 3, Limit: 25}
	p.Sort = []plan.SortSpec{{Field: "updatedAt", Dir: "asc"}}

	stmt := BuildList(p)

	assert.Contains(t, stmt.SQL, " ORDER BY i.updated_at ASC, i.id DESC LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{true, 25, 50}, stmt.Args)
}

func TestSortWhitelistFallsBack(t *testing.T) {
	p := newPlan(plan.IntentList)
	p.Sort = []plan.SortSpec{{Field: "serial_number; DROP TABLE inventories", Dir: "asc"}}

	stmt := BuildList(p)

	assert.Contains(t, stmt.SQL, " ORDER BY i.created_at DESC, i.id DESC ")
	assert.NotContains(t, stmt.SQL, "DROP")
}

func TestSortDirectionDefaultsToDescending(t *testing.T) {
	p := newPlan(plan.IntentList)
	p.Sort = []plan.SortSpec{{Field: "createdAt", Dir: "sideways"}}

	assert.Contains(t, BuildList(p).SQL, " ORDER BY i.created_at DESC, i.id DESC ")
}

func TestBuildGroupCount(t *testing.T) {
	p := newPlan(plan.IntentGroupCount)
	p.GroupBy = plan.String("brand")

	stmt := BuildGroupCount(p)

	assert.True(t, strings.HasPrefix(stmt.SQL, "SELECT b.name AS group_key, COUNT(*) AS group_count FROM inventories i"))
	assert.Contains(t, stmt.SQL, " GROUP BY b.name ORDER BY group_count DESC, group_key ASC LIMIT 500")
	assert.Equal(t, []any{true}, stmt.Args)
}

func TestBuildGroupCountDefaultsToLocation(t *testing.T) {
	p := newPlan(plan.IntentGroupCount)
	p.GroupBy = plan.String("color")

	assert.Contains(t, BuildGroupCount(p).SQL, "GROUP BY l.name")

	p.GroupBy = nil
	assert.Contains(t, BuildGroupCount(p).SQL, "GROUP BY l.name")
}

func TestBuildListByIDs(t *testing.T) {
	p := newPlan(plan.IntentSearch)
	p.Filters.Brand = plan.String("HP")

	stmt := BuildListByIDs(p, []int64{7, 3, 9})

	assert.Contains(t, stmt.SQL, " WHERE i.id IN ($1, $2, $3) ORDER BY i.created_at DESC, i.id DESC LIMIT $4 OFFSET $5")
	assert.Equal(t, []any{int64(7), int64(3), int64(9), 20, 0}, stmt.Args)
	assert.NotContains(t, stmt.SQL, "b.name) =")
}

func TestBuildListByEmptyIDsMatchesNothing(t *testing.T) {
	stmt := BuildListByIDs(newPlan(plan.IntentSearch), nil)

	assert.Contains(t, stmt.SQL, " WHERE 1 = 0 ")
	assert.NotContains(t, stmt.SQL, "IN ()")
	assert.Equal(t, []any{20, 0}, stmt.Args)
}
