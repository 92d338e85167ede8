package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden que cuentan como venta realizada para el cálculo de ADS.
const (
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
)

// Order es una orden de venta histórica. Este sistema solo la lee para
// agregar volumen de ventas; nunca la muta.
type Order struct {
	ID        int64
	CompanyID int64
	Status    string
	CreatedAt time.Time
}

// OrderLine es una línea de orden: qué producto salió de qué bodega y cuánto.
type OrderLine struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	WarehouseID int64
	Qty         decimal.Decimal
}
