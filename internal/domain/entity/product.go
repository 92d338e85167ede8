package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo. El SKU es único global
// (lo garantiza la base de datos; la violación sube como ErrDuplicate).
// El stock se maneja por bodega en InventoryLevel.
type Product struct {
	ID            int64
	Name          string
	SKU           string
	Price         decimal.Decimal // precio de venta, 2 decimales
	ProductTypeID *int64          // nil = sin tipo (sin umbral por defecto)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductType agrupa productos y aporta el umbral de stock bajo por defecto
// cuando no existe override por producto ni por bodega.
type ProductType struct {
	ID                       int64
	Name                     string
	DefaultLowStockThreshold *decimal.Decimal // nil = sin valor por defecto
}
