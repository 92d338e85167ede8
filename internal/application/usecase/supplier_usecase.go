package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// SupplierUseCase administra proveedores y sus enlaces a productos.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, products repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, products: products}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:         strings.TrimSpace(in.Name),
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{
		ID:           supplier.ID,
		Name:         supplier.Name,
		ContactEmail: supplier.ContactEmail,
		CreatedAt:    supplier.CreatedAt,
		UpdatedAt:    supplier.UpdatedAt,
	}, nil
}

// LinkProduct enlaza (empresa, producto, proveedor) con preferencia y lead time.
// Reemplaza el enlace si ya existe.
func (uc *SupplierUseCase) LinkProduct(ctx context.Context, companyID, productID int64, in dto.LinkSupplierRequest) error {
	if in.LeadTimeDays < 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.suppliers.GetByID(ctx, in.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.suppliers.Link(ctx, &entity.ProductSupplier{
		CompanyID:    companyID,
		ProductID:    productID,
		SupplierID:   in.SupplierID,
		Preferred:    in.Preferred,
		LeadTimeDays: in.LeadTimeDays,
	})
}
