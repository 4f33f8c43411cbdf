package querybuilder

import (
	"fmt"
	"strings"

	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/vocabulary"
)

// MaxGroupRows caps the rows a grouped count returns.
const MaxGroupRows = 500

// Statement is a SQL string with its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

const fromClause = "FROM inventories i" +
	" JOIN models m ON m.id = i.model_id" +
	" JOIN brands b ON b.id = m.brand_id" +
	" JOIN types t ON t.id = m.type_id" +
	" LEFT JOIN locations l ON l.id = i.location_id" +
	" LEFT JOIN invoices inv ON inv.id = i.invoice_id" +
	" LEFT JOIN purchase_orders po ON po.id = i.purchase_order_id"

const listColumns = "i.id, i.serial_number, i.active_number, i.internal_folio, i.status, i.enabled," +
	" i.comments, i.reception_date, i.created_at, i.updated_at," +
	" m.name AS model_name, b.name AS brand_name, t.name AS type_name, l.name AS location_name," +
	" i.invoice_id, inv.code AS invoice_code, i.purchase_order_id, po.code AS purchase_order_code"

// BuildList returns the paginated list statement for p.
func BuildList(p *plan.Plan) Statement {
	w := buildWhere(p)
	sql := "SELECT " + listColumns + " " + fromClause + w.sql() + " ORDER BY " + orderBy(p.Sort)
	sql += " LIMIT " + w.bind(p.Pagination.Limit) + " OFFSET " + w.bind(p.Pagination.Offset())
	return Statement{SQL: sql, Args: w.args}
}

// BuildCount returns the statement counting every record p matches.
func BuildCount(p *plan.Plan) Statement {
	w := buildWhere(p)
	return Statement{SQL: "SELECT COUNT(*) AS total " + fromClause + w.sql(), Args: w.args}
}

// BuildGroupCount returns the grouped count statement for p. An absent or unknown
// dimension groups by location.
func BuildGroupCount(p *plan.Plan) Statement {
	dimension := vocabulary.DefaultGroupBy
	if p.GroupBy != nil && vocabulary.IsGroupDimension(*p.GroupBy) {
		dimension = *p.GroupBy
	}
	expr, _ := vocabulary.GroupExpression(dimension)

	w := buildWhere(p)
	sql := fmt.Sprintf("SELECT %s AS group_key, COUNT(*) AS group_count %s%s GROUP BY %s ORDER BY group_count DESC, group_key ASC LIMIT %d",
		expr, fromClause, w.sql(), expr, MaxGroupRows)
	return Statement{SQL: sql, Args: w.args}
}

// BuildListByIDs returns the paginated list statement restricted to ids. Only the
// id set filters; ordering and pagination follow p. An empty set produces a
// statement that matches no rows.
func BuildListByIDs(p *plan.Plan, ids []int64) Statement {
	w := &where{}
	if len(ids) == 0 {
		w.clauses = append(w.clauses, "1 = 0")
	} else {
		placeholders := make([]string, len(ids))
		for i, id := range ids {
			placeholders[i] = w.bind(id)
		}
		w.clauses = append(w.clauses, "i.id IN ("+strings.Join(placeholders, ", ")+")")
	}

	sql := "SELECT " + listColumns + " " + fromClause + w.sql() + " ORDER BY " + orderBy(p.Sort)
	sql += " LIMIT " + w.bind(p.Pagination.Limit) + " OFFSET " + w.bind(p.Pagination.Offset())
	return Statement{SQL: sql, Args: w.args}
}

// orderBy resolves sort specs through the whitelist. Unknown fields are skipped and
// an empty result falls back to newest first.
func orderBy(specs []plan.SortSpec) string {
	parts := make([]string, 0, len(specs)+1)
	for _, s := range specs {
		col, ok := vocabulary.SortColumn(s.Field)
		if !ok {
			continue
		}
		dir := "DESC"
		if s.Dir == vocabulary.SortAsc {
			dir = "ASC"
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		col, _ := vocabulary.SortColumn(vocabulary.DefaultSortField)
		parts = append(parts, col+" DESC")
	}
	return strings.Join(append(parts, "i.id DESC"), ", ")
}
