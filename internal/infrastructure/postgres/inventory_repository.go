package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el nivel de stock de un producto en una bodega.
// Sin fila devuelve cantidad cero, no error.
func (r *InventoryRepo) Get(ctx context.Context, productID, warehouseID int64) (*entity.InventoryLevel, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var l entity.InventoryLevel
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&l.ProductID, &l.WarehouseID, &l.Quantity, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryLevel{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &l, nil
}

// Upsert inserta o reemplaza la cantidad (set idempotente, no suma).
func (r *InventoryRepo) Upsert(ctx context.Context, level *entity.InventoryLevel) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, level.ProductID, level.WarehouseID, level.Quantity)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// ListByCompany devuelve los niveles de stock de las bodegas de la empresa en
// orden estable (bodega, producto). warehouseID > 0 filtra a una sola bodega.
func (r *InventoryRepo) ListByCompany(ctx context.Context, companyID, warehouseID int64) ([]*entity.InventoryLevel, error) {
	query := `
		SELECT i.product_id, i.warehouse_id, i.quantity, i.updated_at
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE w.company_id = $1`
	args := []any{companyID}
	if warehouseID > 0 {
		query += ` AND i.warehouse_id = $2`
		args = append(args, warehouseID)
	}
	query += ` ORDER BY i.warehouse_id, i.product_id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory by company: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(&l.ProductID, &l.WarehouseID, &l.Quantity, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
