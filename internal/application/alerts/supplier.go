package alerts

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// SupplierSelector elige el mejor proveedor de reposición para un producto.
// Primero entre los marcados como preferidos; si no hay, entre todos los
// enlazados. El orden es menor lead_time_days y, en empate, menor supplier_id,
// para que el resultado sea reproducible.
type SupplierSelector struct {
	suppliers repository.SupplierRepository
}

// NewSupplierSelector construye el selector.
func NewSupplierSelector(suppliers repository.SupplierRepository) *SupplierSelector {
	return &SupplierSelector{suppliers: suppliers}
}

// BestSupplier devuelve el proveedor elegido, o nil si el producto no tiene
// proveedores enlazados para esa empresa.
func (s *SupplierSelector) BestSupplier(ctx context.Context, companyID, productID int64) (*entity.Supplier, error) {
	id, err := s.suppliers.FirstLinkedSupplierID(ctx, companyID, productID, true)
	if err != nil {
		return nil, err
	}
	if id == nil {
		id, err = s.suppliers.FirstLinkedSupplierID(ctx, companyID, productID, false)
		if err != nil {
			return nil, err
		}
	}
	if id == nil {
		return nil, nil
	}
	return s.suppliers.GetByID(ctx, *id)
}
