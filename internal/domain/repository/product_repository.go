package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	// Create inserta el producto y asigna su ID generado (RETURNING id).
	// Violación de unicidad del SKU sube como domain.ErrDuplicate.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetByIDs precarga productos en lote; devuelve un mapa id → producto.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
	// List lista productos; q es un término ya normalizado (minúsculas, sin tildes)
	// que filtra por nombre o SKU; vacío = sin filtro.
	List(ctx context.Context, q string, limit, offset int) ([]*entity.Product, error)
}

// ProductTypeRepository puerto de lectura para tipos de producto.
type ProductTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.ProductType, error)
}
