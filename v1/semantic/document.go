package semantic

import (
	"strings"

	"github.com/resguardo/inventory-query/v1/inventory"
)

// Payload keys stored with every point.
const (
	payloadEnabled = "enabled"
	payloadStatus  = "status"
	payloadBrand   = "brand"
	payloadType    = "type"
)

// Document renders the text embedded for an item: catalog names first, then
// identifiers, location and free-text comments.
func Document(item inventory.Item) string {
	parts := []string{item.TypeName, item.BrandName, item.ModelName}
	for _, p := range []*string{item.SerialNumber, item.ActiveNumber, item.LocationName, item.Comments} {
		if p != nil {
			parts = append(parts, *p)
		}
	}

	var b strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}

// Payload returns the filterable metadata stored with an item's point. Brand
// and type are upper-cased to match searchFilters.
func Payload(item inventory.Item) map[string]any {
	return map[string]any{
		payloadEnabled: item.Enabled,
		payloadStatus:  item.Status,
		payloadBrand:   payloadKeyword(item.BrandName),
		payloadType:    payloadKeyword(item.TypeName),
	}
}
