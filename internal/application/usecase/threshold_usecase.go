package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ThresholdUseCase administra los overrides de umbral de stock bajo.
type ThresholdUseCase struct {
	thresholds repository.ThresholdRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewThresholdUseCase construye el caso de uso.
func NewThresholdUseCase(
	thresholds repository.ThresholdRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
) *ThresholdUseCase {
	return &ThresholdUseCase{thresholds: thresholds, products: products, warehouses: warehouses}
}

// Set crea o reemplaza un override de umbral para el producto. Con
// warehouse_id aplica solo a esa bodega; sin él, a nivel de producto.
// El umbral no puede ser negativo (cero es válido: desactiva la alerta).
func (uc *ThresholdUseCase) Set(ctx context.Context, companyID, productID int64, in dto.SetThresholdRequest) error {
	if in.Threshold.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if in.WarehouseID != nil {
		warehouse, err := uc.warehouses.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil || warehouse.CompanyID != companyID {
			return domain.ErrNotFound
		}
	}
	return uc.thresholds.Upsert(ctx, &entity.ProductThreshold{
		CompanyID:   companyID,
		ProductID:   productID,
		WarehouseID: in.WarehouseID,
		Threshold:   in.Threshold,
	})
}
