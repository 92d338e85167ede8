package entity

import "time"

// Supplier representa un proveedor de reposición.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier enlaza (empresa, producto, proveedor) con la marca de
// preferido y el lead time de reposición en días.
type ProductSupplier struct {
	CompanyID    int64
	ProductID    int64
	SupplierID   int64
	Preferred    bool
	LeadTimeDays int
}
