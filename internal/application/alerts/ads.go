package alerts

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ADSEstimator calcula la velocidad de venta (Average Daily Sales) de un
// producto en una bodega sobre una ventana de días hacia atrás.
type ADSEstimator struct {
	sales repository.SalesRepository
}

// NewADSEstimator construye el estimador.
func NewADSEstimator(sales repository.SalesRepository) *ADSEstimator {
	return &ADSEstimator{sales: sales}
}

// AverageDailySales suma las cantidades de líneas de órdenes shipped/completed
// creadas desde `since` y divide por max(lookbackDays, 1). Sin ventas devuelve
// cero; nunca divide por cero.
func (e *ADSEstimator) AverageDailySales(ctx context.Context, companyID, productID, warehouseID int64, since time.Time, lookbackDays int) (decimal.Decimal, error) {
	total, err := e.sales.SumShippedQty(ctx, companyID, productID, warehouseID, since)
	if err != nil {
		return decimal.Zero, err
	}
	days := lookbackDays
	if days < 1 {
		days = 1
	}
	return total.Div(decimal.NewFromInt(int64(days))), nil
}
