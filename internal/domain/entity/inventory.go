package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLevel representa el stock actual de un producto en una bodega.
// Clave compuesta (product_id, warehouse_id).
type InventoryLevel struct {
	ProductID   int64
	WarehouseID int64
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}

// ProductThreshold es un override del umbral de stock bajo.
// WarehouseID nil = override a nivel de producto (aplica a todas las bodegas).
// Precedencia estricta: bodega > producto > tipo de producto > cero.
type ProductThreshold struct {
	ID          int64
	CompanyID   int64
	ProductID   int64
	WarehouseID *int64
	Threshold   decimal.Decimal
}
