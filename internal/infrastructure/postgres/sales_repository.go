package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consulta el histórico de órdenes para estimar demanda.
type SalesRepo struct {
	q Querier
}

func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// SumShippedQty suma las cantidades de líneas de órdenes despachadas o
// completadas de un producto en una bodega desde la fecha dada.
func (r *SalesRepo) SumShippedQty(ctx context.Context, companyID, productID, warehouseID int64, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(ol.qty), 0)
		FROM order_lines ol
		JOIN orders o ON o.id = ol.order_id
		WHERE o.company_id = $1
		  AND o.status IN ('shipped', 'completed')
		  AND o.created_at >= $2
		  AND ol.product_id = $3
		  AND ol.warehouse_id = $4`
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query, companyID, since, productID, warehouseID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum shipped qty: %w", err)
	}
	return total, nil
}
