package inventory

import "time"

// Item is one inventory record with its catalog names resolved. Column names
// match the list projection built by querybuilder.
type Item struct {
	ID                int64      `json:"id" gorm:"column:id"`
	SerialNumber      *string    `json:"serialNumber" gorm:"column:serial_number"`
	ActiveNumber      *string    `json:"activeNumber" gorm:"column:active_number"`
	InternalFolio     *string    `json:"internalFolio" gorm:"column:internal_folio"`
	Status            string     `json:"status" gorm:"column:status"`
	Enabled           bool       `json:"enabled" gorm:"column:enabled"`
	Comments          *string    `json:"comments" gorm:"column:comments"`
	ReceptionDate     *time.Time `json:"receptionDate" gorm:"column:reception_date"`
	CreatedAt         time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" gorm:"column:updated_at"`
	ModelName         string     `json:"modelName" gorm:"column:model_name"`
	BrandName         string     `json:"brandName" gorm:"column:brand_name"`
	TypeName          string     `json:"typeName" gorm:"column:type_name"`
	LocationName      *string    `json:"locationName" gorm:"column:location_name"`
	InvoiceID         *int64     `json:"invoiceId" gorm:"column:invoice_id"`
	InvoiceCode       *string    `json:"invoiceCode" gorm:"column:invoice_code"`
	PurchaseOrderID   *int64     `json:"purchaseOrderId" gorm:"column:purchase_order_id"`
	PurchaseOrderCode *string    `json:"purchaseOrderCode" gorm:"column:purchase_order_code"`
}

// GroupRow is one bucket of a grouped count. Records whose dimension is NULL
// are reported under a nil key.
type GroupRow struct {
	Key   *string `json:"key" gorm:"column:group_key"`
	Count int64   `json:"count" gorm:"column:group_count"`
}

type countRow struct {
	Total int64 `gorm:"column:total"`
}
