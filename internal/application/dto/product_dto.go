package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price e InitialQuantity llegan como JSON crudo porque los clientes del
// sistema original envían tanto números como strings numéricos; la
// validación con mensaje por campo ocurre en el caso de uso.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           json.RawMessage `json:"price"`
	InitialQuantity json.RawMessage `json:"initial_quantity"`
	WarehouseID     *int64          `json:"warehouse_id"`
}

// CreateProductResponse respuesta de creación (contrato original de stockflow).
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	ProductTypeID *int64          `json:"product_type_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SetThresholdRequest entrada para fijar un override de umbral de stock bajo.
// WarehouseID nil = override a nivel de producto.
type SetThresholdRequest struct {
	CompanyID   int64           `json:"company_id"`
	WarehouseID *int64          `json:"warehouse_id"`
	Threshold   decimal.Decimal `json:"threshold"`
}
