package dto

// AlertSupplierDTO proveedor sugerido para reponer un producto en alerta.
type AlertSupplierDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
// DaysUntilStockout es nil cuando no hay velocidad de venta (ads ≤ 0); en las
// alertas retenidas siempre viene, porque solo se retiene con ads > 0.
type LowStockAlertDTO struct {
	ProductID         int64             `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       int64             `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      float64           `json:"current_stock"`
	Threshold         float64           `json:"threshold"`
	DaysUntilStockout *float64          `json:"days_until_stockout"`
	Supplier          *AlertSupplierDTO `json:"supplier"`
}

// AlertDebugDTO diagnóstico por fila de inventario escaneada (solo con debug=1).
// ReasonIfSkip lista cada condición de descarte que aplica, evaluadas de forma
// independiente: una fila puede acumular varias razones.
type AlertDebugDTO struct {
	SKU           string   `json:"sku"`
	ProductID     int64    `json:"product_id"`
	WarehouseID   int64    `json:"warehouse_id"`
	WarehouseName string   `json:"warehouse_name"`
	Stock         float64  `json:"stock"`
	Threshold     float64  `json:"threshold"`
	ADS           float64  `json:"ads"`
	Decision      string   `json:"decision"` // "keep" | "skip"
	ReasonIfSkip  []string `json:"reason_if_skip"`
}

// LowStockAlertsResponse respuesta del reporte de stock bajo.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
	Debug       []AlertDebugDTO    `json:"debug,omitempty"`
}
