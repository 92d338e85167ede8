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

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo implementación de ThresholdRepository sobre PostgreSQL.
type ThresholdRepo struct {
	q Querier
}

func NewThresholdRepository(q Querier) *ThresholdRepo {
	return &ThresholdRepo{q: q}
}

// GetWarehouseOverride devuelve el umbral específico producto+bodega, o nil si no existe.
func (r *ThresholdRepo) GetWarehouseOverride(ctx context.Context, companyID, productID, warehouseID int64) (*decimal.Decimal, error) {
	query := `
		SELECT threshold FROM product_thresholds
		WHERE company_id = $1 AND product_id = $2 AND warehouse_id = $3`
	var d decimal.Decimal
	err := r.q.QueryRow(ctx, query, companyID, productID, warehouseID).Scan(&d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse threshold: %w", err)
	}
	return &d, nil
}

// GetProductOverride devuelve el umbral a nivel producto (warehouse_id NULL), o nil.
func (r *ThresholdRepo) GetProductOverride(ctx context.Context, companyID, productID int64) (*decimal.Decimal, error) {
	query := `
		SELECT threshold FROM product_thresholds
		WHERE company_id = $1 AND product_id = $2 AND warehouse_id IS NULL`
	var d decimal.Decimal
	err := r.q.QueryRow(ctx, query, companyID, productID).Scan(&d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product threshold: %w", err)
	}
	return &d, nil
}

// Upsert crea o actualiza un override. Los índices únicos parciales
// (warehouse_id IS NULL / IS NOT NULL) exigen ramas separadas de ON CONFLICT.
func (r *ThresholdRepo) Upsert(ctx context.Context, t *entity.ProductThreshold) error {
	var query string
	var args []any
	if t.WarehouseID != nil {
		query = `
			INSERT INTO product_thresholds (company_id, product_id, warehouse_id, threshold)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (company_id, product_id, warehouse_id) WHERE warehouse_id IS NOT NULL
			DO UPDATE SET threshold = EXCLUDED.threshold`
		args = []any{t.CompanyID, t.ProductID, *t.WarehouseID, t.Threshold}
	} else {
		query = `
			INSERT INTO product_thresholds (company_id, product_id, warehouse_id, threshold)
			VALUES ($1, $2, NULL, $3)
			ON CONFLICT (company_id, product_id) WHERE warehouse_id IS NULL
			DO UPDATE SET threshold = EXCLUDED.threshold`
		args = []any{t.CompanyID, t.ProductID, t.Threshold}
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert threshold: %w", err)
	}
	return nil
}
