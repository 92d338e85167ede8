package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesRepository lecturas agregadas sobre el historial de órdenes.
type SalesRepository interface {
	// SumShippedQty suma las cantidades de líneas de orden del producto en la
	// bodega, contando solo órdenes shipped/completed de la empresa creadas
	// desde `since`. Sin filas devuelve cero, nunca error por vacío.
	SumShippedQty(ctx context.Context, companyID, productID, warehouseID int64, since time.Time) (decimal.Decimal, error)
}
