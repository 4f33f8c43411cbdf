package vocabulary

import "strings"

// Date fields a plan may filter or sort on.
const (
	DateFieldCreatedAt     = "createdAt"
	DateFieldUpdatedAt     = "updatedAt"
	DateFieldReceptionDate = "receptionDate"
)

// Group dimensions for grouped counts.
const (
	GroupByBrand    = "brand"
	GroupByType     = "type"
	GroupByModel    = "model"
	GroupByLocation = "location"
	GroupByStatus   = "status"

	// DefaultGroupBy is used whenever a grouped count names no usable dimension.
	DefaultGroupBy = GroupByLocation
)

// Inventory status values as stored.
const (
	StatusAlta          = "ALTA"
	StatusBaja          = "BAJA"
	StatusPropuestaBaja = "PROPUESTA_BAJA"
)

// Missing-data report kinds and fields.
const (
	MissingKindField    = "field"
	MissingKindRelation = "relation"

	MissingSerialNumber  = "serialNumber"
	MissingActiveNumber  = "activeNumber"
	MissingInternalFolio = "internalFolio"
	MissingReceptionDate = "receptionDate"
	MissingLocation      = "location"
	MissingInvoice       = "invoice"
	MissingPurchaseOrder = "purchaseOrder"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultSortField is the ordering used when a plan names none or names an unknown one.
const DefaultSortField = DateFieldCreatedAt

var dateColumns = map[string]string{
	DateFieldCreatedAt:     "i.created_at",
	DateFieldUpdatedAt:     "i.updated_at",
	DateFieldReceptionDate: "i.reception_date",
}

var groupExpressions = map[string]string{
	GroupByBrand:    "b.name",
	GroupByType:     "t.name",
	GroupByModel:    "m.name",
	GroupByLocation: "l.name",
	GroupByStatus:   "i.status",
}

// MissingTarget describes the column a missing-data report checks.
type MissingTarget struct {
	Kind   string
	Column string
	// Text columns also treat the empty string as missing.
	Text bool
}

var missingTargets = map[string]MissingTarget{
	MissingSerialNumber:  {Kind: MissingKindField, Column: "i.serial_number", Text: true},
	MissingActiveNumber:  {Kind: MissingKindField, Column: "i.active_number", Text: true},
	MissingInternalFolio: {Kind: MissingKindField, Column: "i.internal_folio", Text: true},
	MissingReceptionDate: {Kind: MissingKindField, Column: "i.reception_date"},
	MissingLocation:      {Kind: MissingKindRelation, Column: "i.location_id"},
	MissingInvoice:       {Kind: MissingKindRelation, Column: "i.invoice_id"},
	MissingPurchaseOrder: {Kind: MissingKindRelation, Column: "i.purchase_order_id"},
}

// Statuses lists every valid inventory status.
var Statuses = []string{StatusAlta, StatusBaja, StatusPropuestaBaja}

// DateFields lists every valid date field, in display order.
var DateFields = []string{DateFieldCreatedAt, DateFieldUpdatedAt, DateFieldReceptionDate}

// GroupDimensions lists every valid grouping dimension, in display order.
var GroupDimensions = []string{GroupByBrand, GroupByType, GroupByModel, GroupByLocation, GroupByStatus}

// MissingFields lists every field a missing-data report may target.
var MissingFields = []string{
	MissingSerialNumber, MissingActiveNumber, MissingInternalFolio, MissingReceptionDate,
	MissingLocation, MissingInvoice, MissingPurchaseOrder,
}

// DateColumn resolves a date field to its alias-qualified column.
func DateColumn(field string) (string, bool) {
	col, ok := dateColumns[field]
	return col, ok
}

// SortColumn resolves a sort field. Sorting is only allowed on date fields.
func SortColumn(field string) (string, bool) {
	return DateColumn(field)
}

// GroupExpression resolves a grouping dimension to its SQL expression.
func GroupExpression(dimension string) (string, bool) {
	expr, ok := groupExpressions[dimension]
	return expr, ok
}

// Missing resolves a missing-data field to its target column.
func Missing(field string) (MissingTarget, bool) {
	t, ok := missingTargets[field]
	return t, ok
}

// ParseStatus matches a status case-insensitively against the stored values.
func ParseStatus(s string) (string, bool) {
	candidate := strings.ToUpper(strings.TrimSpace(s))
	candidate = strings.ReplaceAll(candidate, " ", "_")
	candidate = strings.ReplaceAll(candidate, "_DE_", "_")
	for _, st := range Statuses {
		if st == candidate {
			return st, true
		}
	}
	return "", false
}

// IsDateField reports whether field is a known date field.
func IsDateField(field string) bool {
	_, ok := dateColumns[field]
	return ok
}

// IsGroupDimension reports whether dimension is a known grouping dimension.
func IsGroupDimension(dimension string) bool {
	_, ok := groupExpressions[dimension]
	return ok
}
