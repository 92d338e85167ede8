package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// Razones de descarte de una fila de inventario. Se evalúan de forma
// independiente: una misma fila puede acumular varias.
const (
	ReasonNoRecentSales       = "no_recent_sales"
	ReasonZeroThreshold       = "zero_threshold"
	ReasonStockNotBelowThresh = "stock_not_below_threshold"
)

// Decisiones por fila en el diagnóstico.
const (
	DecisionKeep = "keep"
	DecisionSkip = "skip"
)

// Defaults valores por defecto del reporte (vienen de configuración).
type Defaults struct {
	LookbackDays int
	Limit        int
}

// Params parámetros de una ejecución del reporte. Valores ≤ 0 en LookbackDays
// o Limit caen al default; WarehouseID 0 significa todas las bodegas.
type Params struct {
	LookbackDays int
	Limit        int
	WarehouseID  int64
	Debug        bool
}

// LowStockUseCase calcula el reporte de alertas de stock bajo de una empresa.
// Cómputo sin estado sobre una lectura puntual: itera el inventario, resuelve
// umbral y ADS por fila, decide retener o descartar, elige proveedor para las
// retenidas y ordena por déficit.
type LowStockUseCase struct {
	inventory  repository.InventoryRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	resolver   *ThresholdResolver
	estimator  *ADSEstimator
	selector   *SupplierSelector
	defaults   Defaults
	now        func() time.Time
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(
	inventory repository.InventoryRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	resolver *ThresholdResolver,
	estimator *ADSEstimator,
	selector *SupplierSelector,
	defaults Defaults,
) *LowStockUseCase {
	if defaults.LookbackDays <= 0 {
		defaults.LookbackDays = 30
	}
	if defaults.Limit <= 0 {
		defaults.Limit = 100
	}
	return &LowStockUseCase{
		inventory:  inventory,
		products:   products,
		warehouses: warehouses,
		resolver:   resolver,
		estimator:  estimator,
		selector:   selector,
		defaults:   defaults,
		now:        time.Now,
	}
}

// WithClock fija el reloj del caso de uso (para tests deterministas).
func (uc *LowStockUseCase) WithClock(now func() time.Time) *LowStockUseCase {
	uc.now = now
	return uc
}

// LowStockAlerts ejecuta el reporte.
//
// El corte por límite ocurre durante el escaneo: al juntar `limit` alertas se
// deja de escanear y el ordenamiento posterior solo reordena lo ya recogido.
// Cuando hay más candidatas que `limit`, el resultado depende del orden de
// escaneo y no es el top-K global por déficit. Comportamiento heredado del
// sistema original y fijado por test; no "corregir" sin decidirlo explícito.
func (uc *LowStockUseCase) LowStockAlerts(ctx context.Context, companyID int64, p Params) (*dto.LowStockAlertsResponse, error) {
	lookback := p.LookbackDays
	if lookback <= 0 {
		lookback = uc.defaults.LookbackDays
	}
	limit := p.Limit
	if limit <= 0 {
		limit = uc.defaults.Limit
	}
	since := uc.now().Add(-time.Duration(lookback) * 24 * time.Hour)

	rows, err := uc.inventory.ListByCompany(ctx, companyID, p.WarehouseID)
	if err != nil {
		return nil, err
	}

	// Precarga en lote de productos y bodegas referenciados
	productIDs := make([]int64, 0, len(rows))
	warehouseIDs := make([]int64, 0, len(rows))
	seenP := make(map[int64]struct{}, len(rows))
	seenW := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seenP[row.ProductID]; !ok {
			seenP[row.ProductID] = struct{}{}
			productIDs = append(productIDs, row.ProductID)
		}
		if _, ok := seenW[row.WarehouseID]; !ok {
			seenW[row.WarehouseID] = struct{}{}
			warehouseIDs = append(warehouseIDs, row.WarehouseID)
		}
	}
	products, err := uc.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.warehouses.GetByIDs(ctx, warehouseIDs)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0, limit)
	var debug []dto.AlertDebugDTO
	if p.Debug {
		debug = make([]dto.AlertDebugDTO, 0, len(rows))
	}

	for _, row := range rows {
		product := products[row.ProductID]
		warehouse := warehouses[row.WarehouseID]
		if product == nil || warehouse == nil {
			continue // fila huérfana, el inventario referencia algo ya borrado
		}

		stock := row.Quantity
		ads, err := uc.estimator.AverageDailySales(ctx, companyID, row.ProductID, row.WarehouseID, since, lookback)
		if err != nil {
			return nil, err
		}
		threshold, err := uc.resolver.Resolve(ctx, companyID, product, row.WarehouseID)
		if err != nil {
			return nil, err
		}

		var reasons []string
		if ads.LessThanOrEqual(decimal.Zero) {
			reasons = append(reasons, ReasonNoRecentSales)
		}
		if threshold.LessThanOrEqual(decimal.Zero) {
			reasons = append(reasons, ReasonZeroThreshold)
		}
		if stock.GreaterThanOrEqual(threshold) {
			reasons = append(reasons, ReasonStockNotBelowThresh)
		}
		keep := ads.GreaterThan(decimal.Zero) && threshold.GreaterThan(decimal.Zero) && stock.LessThan(threshold)

		if p.Debug {
			decision := DecisionSkip
			if keep {
				decision = DecisionKeep
			}
			debug = append(debug, dto.AlertDebugDTO{
				SKU:           product.SKU,
				ProductID:     row.ProductID,
				WarehouseID:   row.WarehouseID,
				WarehouseName: warehouse.Name,
				Stock:         stock.InexactFloat64(),
				Threshold:     threshold.InexactFloat64(),
				ADS:           ads.InexactFloat64(),
				Decision:      decision,
				ReasonIfSkip:  reasons,
			})
		}

		if !keep {
			continue
		}

		supplier, err := uc.selector.BestSupplier(ctx, companyID, row.ProductID)
		if err != nil {
			return nil, err
		}
		var supplierDTO *dto.AlertSupplierDTO
		if supplier != nil {
			supplierDTO = &dto.AlertSupplierDTO{
				ID:           supplier.ID,
				Name:         supplier.Name,
				ContactEmail: supplier.ContactEmail,
			}
		}

		var daysUntilStockout *float64
		if ads.GreaterThan(decimal.Zero) {
			d := stock.Div(ads).InexactFloat64()
			daysUntilStockout = &d
		}

		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         product.ID,
			ProductName:       product.Name,
			SKU:               product.SKU,
			WarehouseID:       warehouse.ID,
			WarehouseName:     warehouse.Name,
			CurrentStock:      stock.InexactFloat64(),
			Threshold:         threshold.InexactFloat64(),
			DaysUntilStockout: daysUntilStockout,
			Supplier:          supplierDTO,
		})

		if len(alerts) >= limit {
			break // corte temprano: las filas restantes no se escanean
		}
	}

	// Más deficiente primero: (stock - umbral) más negativo al inicio
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CurrentStock-alerts[i].Threshold < alerts[j].CurrentStock-alerts[j].Threshold
	})
	if len(alerts) > limit {
		alerts = alerts[:limit] // defensivo, el corte temprano ya lo garantiza
	}

	return &dto.LowStockAlertsResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
		Debug:       debug,
	}, nil
}
