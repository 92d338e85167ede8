package entity

import "time"

// Company representa una organización/tenant del sistema. Las bodegas,
// umbrales y enlaces de proveedor siempre cuelgan de una empresa.
type Company struct {
	ID        int64
	Name      string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
