package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LinkSupplierRequest entrada para enlazar un proveedor a un producto.
type LinkSupplierRequest struct {
	CompanyID    int64 `json:"company_id"`
	SupplierID   int64 `json:"supplier_id"`
	Preferred    bool  `json:"preferred"`
	LeadTimeDays int   `json:"lead_time_days"`
}
