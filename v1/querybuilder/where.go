package querybuilder

import (
	"fmt"
	"strings"

	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/vocabulary"
)

type where struct {
	clauses []string
	args    []any
}

// bind appends v to the argument list and returns its placeholder.
func (w *where) bind(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *where) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *where) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// buildWhere translates the filter criteria and missing-data spec of p. Clause order
// is fixed so identical plans render identical SQL.
func buildWhere(p *plan.Plan) *where {
	w := &where{}
	f := p.Filters

	if f.Enabled != nil {
		w.add("i.enabled = " + w.bind(*f.Enabled))
	}
	if f.Status != nil {
		w.add("i.status = " + w.bind(*f.Status))
	}

	switch {
	case len(f.Brands) > 0:
		ors := make([]string, len(f.Brands))
		for i, b := range f.Brands {
			ors[i] = "LOWER(b.name) = LOWER(" + w.bind(b) + ")"
		}
		w.add("(" + strings.Join(ors, " OR ") + ")")
	case f.Brand != nil:
		w.add("LOWER(b.name) = LOWER(" + w.bind(*f.Brand) + ")")
	}

	if f.Type != nil {
		w.add("LOWER(t.name) = LOWER(" + w.bind(*f.Type) + ")")
	}
	if f.Model != nil {
		w.add("m.name ILIKE " + w.bind(containsPattern(*f.Model)))
	}
	if f.SerialNumber != nil {
		w.add("i.serial_number ILIKE " + w.bind(containsPattern(*f.SerialNumber)))
	}
	if f.ActiveNumber != nil {
		w.add("i.active_number ILIKE " + w.bind(containsPattern(*f.ActiveNumber)))
	}
	if f.Location != nil {
		w.add("l.name ILIKE " + w.bind(containsPattern(*f.Location)))
	}

	if f.HasInvoice != nil {
		w.add(presence("i.invoice_id", *f.HasInvoice))
	}
	if f.HasPurchaseOrder != nil {
		w.add(presence("i.purchase_order_id", *f.HasPurchaseOrder))
	}

	if f.DateFrom != nil || f.DateTo != nil {
		col, ok := "", false
		if f.DateField != nil {
			col, ok = vocabulary.DateColumn(*f.DateField)
		}
		if !ok {
			col, _ = vocabulary.DateColumn(vocabulary.DateFieldCreatedAt)
		}
		if f.DateFrom != nil {
			w.add(col + " >= " + w.bind(*f.DateFrom) + "::date")
		}
		if f.DateTo != nil {
			w.add(col + " < " + w.bind(*f.DateTo) + "::date + INTERVAL '1 day'")
		}
	}

	if p.Missing != nil {
		if target, ok := vocabulary.Missing(p.Missing.Field); ok {
			if target.Text {
				w.add(fmt.Sprintf("(%s IS NULL OR %s = '')", target.Column, target.Column))
			} else {
				w.add(target.Column + " IS NULL")
			}
		}
	}

	return w
}

func presence(column string, present bool) string {
	if present {
		return column + " IS NOT NULL"
	}
	return column + " IS NULL"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps s for a substring ILIKE match, escaping wildcards in s.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
