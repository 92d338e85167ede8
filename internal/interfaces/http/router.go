package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	ThresholdUC *usecase.ThresholdUseCase
	SupplierUC  *usecase.SupplierUseCase
	LowStockUC  *alerts.LowStockUseCase
	ExportUC    *alerts.ExportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Los endpoints heredados de stockflow
// (alerta de stock bajo y alta de producto) quedan públicos con su contrato
// original; la administración va detrás del Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Alertas de stock bajo (público, contrato original)
	alertHandler := NewAlertHandler(deps.LowStockUC, deps.ExportUC)
	companies.Get("/:company_id/alerts/low-stock", alertHandler.LowStock)
	companies.Get("/:company_id/alerts/low-stock/export", alertHandler.Export)

	// Products: alta y lectura públicas (contrato original)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Post("/products", productHandler.Create)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Suppliers y enlaces producto-proveedor (protegido, admin o bodeguero)
	canManageStock := RequireRole("admin", "bodeguero")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	protected.Post("/suppliers", canManageStock, supplierHandler.Create)
	protected.Put("/products/:id/suppliers", canManageStock, supplierHandler.LinkProduct)

	// Umbrales de stock bajo (protegido, admin o bodeguero)
	thresholdHandler := NewThresholdHandler(deps.ThresholdUC)
	protected.Put("/products/:id/thresholds", canManageStock, thresholdHandler.Set)
}
