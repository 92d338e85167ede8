package alerts

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ThresholdResolver resuelve el umbral efectivo de stock bajo para una tripleta
// (empresa, producto, bodega) con una cadena ordenada de estrategias: gana el
// primer valor no nulo.
//
//  1. override específico de bodega
//  2. override a nivel de producto (warehouse_id IS NULL)
//  3. umbral por defecto del tipo de producto
//  4. cero
type ThresholdResolver struct {
	thresholds repository.ThresholdRepository
	types      repository.ProductTypeRepository
}

// NewThresholdResolver construye el resolver.
func NewThresholdResolver(thresholds repository.ThresholdRepository, types repository.ProductTypeRepository) *ThresholdResolver {
	return &ThresholdResolver{thresholds: thresholds, types: types}
}

// Resolve devuelve el umbral efectivo. Lectura pura, sin efectos.
func (r *ThresholdResolver) Resolve(ctx context.Context, companyID int64, product *entity.Product, warehouseID int64) (decimal.Decimal, error) {
	chain := []func() (*decimal.Decimal, error){
		func() (*decimal.Decimal, error) {
			return r.thresholds.GetWarehouseOverride(ctx, companyID, product.ID, warehouseID)
		},
		func() (*decimal.Decimal, error) {
			return r.thresholds.GetProductOverride(ctx, companyID, product.ID)
		},
		func() (*decimal.Decimal, error) {
			if product.ProductTypeID == nil {
				return nil, nil
			}
			pt, err := r.types.GetByID(ctx, *product.ProductTypeID)
			if err != nil || pt == nil {
				return nil, err
			}
			return pt.DefaultLowStockThreshold, nil
		},
	}

	for _, lookup := range chain {
		v, err := lookup()
		if err != nil {
			return decimal.Zero, err
		}
		if v != nil {
			return *v, nil
		}
	}
	return decimal.Zero, nil
}
