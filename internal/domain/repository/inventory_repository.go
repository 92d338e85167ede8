package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para niveles de stock.
type InventoryRepository interface {
	Get(ctx context.Context, productID, warehouseID int64) (*entity.InventoryLevel, error)
	// Upsert fija la cantidad (set idempotente, no suma).
	Upsert(ctx context.Context, level *entity.InventoryLevel) error
	// ListByCompany devuelve los niveles de stock de todas las bodegas de la
	// empresa, en orden estable de escaneo (bodega, producto). warehouseID > 0
	// restringe a una sola bodega.
	ListByCompany(ctx context.Context, companyID, warehouseID int64) ([]*entity.InventoryLevel, error)
}

// ThresholdRepository puerto de persistencia para overrides de umbral.
type ThresholdRepository interface {
	// GetWarehouseOverride devuelve el umbral específico de (empresa, producto,
	// bodega), o nil si no existe.
	GetWarehouseOverride(ctx context.Context, companyID, productID, warehouseID int64) (*decimal.Decimal, error)
	// GetProductOverride devuelve el umbral a nivel de producto (warehouse_id IS NULL),
	// o nil si no existe.
	GetProductOverride(ctx context.Context, companyID, productID int64) (*decimal.Decimal, error)
	// Upsert crea o reemplaza un override. warehouseID nil = nivel producto.
	Upsert(ctx context.Context, t *entity.ProductThreshold) error
}
