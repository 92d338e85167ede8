package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores y sus enlaces a productos.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	// Link crea o reemplaza el enlace (empresa, producto, proveedor).
	Link(ctx context.Context, link *entity.ProductSupplier) error
	// FirstLinkedSupplierID devuelve el proveedor enlazado con menor
	// lead_time_days (empate: menor supplier_id) para (empresa, producto).
	// preferredOnly restringe a enlaces marcados como preferidos.
	// nil = no hay enlaces que cumplan.
	FirstLinkedSupplierID(ctx context.Context, companyID, productID int64, preferredOnly bool) (*int64, error)
}
