package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	apphttp "github.com/jhoicas/stockflow-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type stubInventoryRepo struct {
	rows []*entity.InventoryLevel
}

func (f *stubInventoryRepo) Get(_ context.Context, productID, warehouseID int64) (*entity.InventoryLevel, error) {
	for _, r := range f.rows {
		if r.ProductID == productID && r.WarehouseID == warehouseID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *stubInventoryRepo) Upsert(_ context.Context, level *entity.InventoryLevel) error {
	f.rows = append(f.rows, level)
	return nil
}

func (f *stubInventoryRepo) ListByCompany(_ context.Context, _ int64, warehouseID int64) ([]*entity.InventoryLevel, error) {
	if warehouseID <= 0 {
		return f.rows, nil
	}
	var out []*entity.InventoryLevel
	for _, r := range f.rows {
		if r.WarehouseID == warehouseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubProductRepo struct {
	byID  map[int64]*entity.Product
	bySKU map[string]*entity.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: map[int64]*entity.Product{}, bySKU: map[string]*entity.Product{}}
}

func (f *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := f.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	p.ID = int64(len(f.byID) + 1)
	f.byID[p.ID] = p
	f.bySKU[p.SKU] = p
	return nil
}

func (f *stubProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *stubProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

func (f *stubProductRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*entity.Product, error) {
	out := map[int64]*entity.Product{}
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *stubProductRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

type stubWarehouseRepo struct {
	byID map[int64]*entity.Warehouse
}

func (f *stubWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	w.ID = int64(len(f.byID) + 1)
	f.byID[w.ID] = w
	return nil
}

func (f *stubWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	return f.byID[id], nil
}

func (f *stubWarehouseRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*entity.Warehouse, error) {
	out := map[int64]*entity.Warehouse{}
	for _, id := range ids {
		if w, ok := f.byID[id]; ok {
			out[id] = w
		}
	}
	return out, nil
}

func (f *stubWarehouseRepo) ListByCompany(_ context.Context, companyID int64, _, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.byID {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type thresholdKey struct {
	productID   int64
	warehouseID int64 // 0 = nivel producto
}

type stubThresholdRepo struct {
	overrides map[thresholdKey]decimal.Decimal
}

func (f *stubThresholdRepo) GetWarehouseOverride(_ context.Context, _, productID, warehouseID int64) (*decimal.Decimal, error) {
	if v, ok := f.overrides[thresholdKey{productID, warehouseID}]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *stubThresholdRepo) GetProductOverride(_ context.Context, _, productID int64) (*decimal.Decimal, error) {
	if v, ok := f.overrides[thresholdKey{productID, 0}]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *stubThresholdRepo) Upsert(_ context.Context, t *entity.ProductThreshold) error {
	key := thresholdKey{productID: t.ProductID}
	if t.WarehouseID != nil {
		key.warehouseID = *t.WarehouseID
	}
	f.overrides[key] = t.Threshold
	return nil
}

type stubTypeRepo struct{}

func (stubTypeRepo) GetByID(_ context.Context, _ int64) (*entity.ProductType, error) {
	return nil, nil
}

type salesKey struct {
	productID   int64
	warehouseID int64
}

type stubSalesRepo struct {
	sums map[salesKey]decimal.Decimal
}

func (f *stubSalesRepo) SumShippedQty(_ context.Context, _, productID, warehouseID int64, _ time.Time) (decimal.Decimal, error) {
	return f.sums[salesKey{productID, warehouseID}], nil
}

type stubSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
	links     []*entity.ProductSupplier
}

func (f *stubSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	s.ID = int64(len(f.suppliers) + 1)
	f.suppliers[s.ID] = s
	return nil
}

func (f *stubSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}

func (f *stubSupplierRepo) Link(_ context.Context, link *entity.ProductSupplier) error {
	f.links = append(f.links, link)
	return nil
}

func (f *stubSupplierRepo) FirstLinkedSupplierID(_ context.Context, companyID, productID int64, preferredOnly bool) (*int64, error) {
	var best *entity.ProductSupplier
	for _, l := range f.links {
		if l.CompanyID != companyID || l.ProductID != productID {
			continue
		}
		if preferredOnly && !l.Preferred {
			continue
		}
		if best == nil ||
			l.LeadTimeDays < best.LeadTimeDays ||
			(l.LeadTimeDays == best.LeadTimeDays && l.SupplierID < best.SupplierID) {
			best = l
		}
	}
	if best == nil {
		return nil, nil
	}
	id := best.SupplierID
	return &id, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario
// ──────────────────────────────────────────────────────────────────────────────

const alertCompanyID = int64(7)

type alertScenario struct {
	inventory  *stubInventoryRepo
	products   *stubProductRepo
	warehouses *stubWarehouseRepo
	thresholds *stubThresholdRepo
	sales      *stubSalesRepo
	suppliers  *stubSupplierRepo
}

func newAlertScenario() *alertScenario {
	return &alertScenario{
		inventory:  &stubInventoryRepo{},
		products:   newStubProductRepo(),
		warehouses: &stubWarehouseRepo{byID: map[int64]*entity.Warehouse{}},
		thresholds: &stubThresholdRepo{overrides: map[thresholdKey]decimal.Decimal{}},
		sales:      &stubSalesRepo{sums: map[salesKey]decimal.Decimal{}},
		suppliers:  &stubSupplierRepo{suppliers: map[int64]*entity.Supplier{}},
	}
}

// app construye la aplicación Fiber con las rutas de alertas sobre los fakes.
func (s *alertScenario) app() *fiber.App {
	resolver := alerts.NewThresholdResolver(s.thresholds, stubTypeRepo{})
	estimator := alerts.NewADSEstimator(s.sales)
	selector := alerts.NewSupplierSelector(s.suppliers)
	uc := alerts.NewLowStockUseCase(
		s.inventory, s.products, s.warehouses,
		resolver, estimator, selector,
		alerts.Defaults{LookbackDays: 30, Limit: 100},
	)
	handler := apphttp.NewAlertHandler(uc, nil)

	app := fiber.New()
	app.Get("/api/companies/:company_id/alerts/low-stock", handler.LowStock)
	return app
}

func (s *alertScenario) addAlertableProduct(productID, warehouseID int64, stock, threshold, sales30d int64) {
	s.products.byID[productID] = &entity.Product{
		ID: productID, Name: "Producto", SKU: "SKU-" + strconv.FormatInt(productID, 10),
	}
	s.products.bySKU[s.products.byID[productID].SKU] = s.products.byID[productID]
	s.warehouses.byID[warehouseID] = &entity.Warehouse{
		ID: warehouseID, CompanyID: alertCompanyID, Name: "Bodega Central",
	}
	s.inventory.rows = append(s.inventory.rows, &entity.InventoryLevel{
		ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.NewFromInt(stock),
	})
	s.thresholds.overrides[thresholdKey{productID, warehouseID}] = decimal.NewFromInt(threshold)
	s.sales.sums[salesKey{productID, warehouseID}] = decimal.NewFromInt(sales30d)
}

func getJSON(t *testing.T, app *fiber.App, url string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_WarehouseIDNoEntero_Retorna400(t *testing.T) {
	app := newAlertScenario().app()

	resp, body := getJSON(t, app, "/api/companies/7/alerts/low-stock?warehouse_id=abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_warehouse_id", body["error"])
}

func TestAlertas_FlujoCompleto_UnaAlerta(t *testing.T) {
	s := newAlertScenario()
	// stock 5, umbral 10, 30 unidades en 30 días → ads 1 → 5 días de stock
	s.addAlertableProduct(1, 1, 5, 10, 30)
	s.suppliers.suppliers[20] = &entity.Supplier{ID: 20, Name: "Acme", ContactEmail: "ventas@acme.co"}
	s.suppliers.links = append(s.suppliers.links, &entity.ProductSupplier{
		CompanyID: alertCompanyID, ProductID: 1, SupplierID: 20, Preferred: true, LeadTimeDays: 3,
	})

	resp, body := getJSON(t, s.app(), "/api/companies/7/alerts/low-stock")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, body["total_alerts"])
	alertsList := body["alerts"].([]interface{})
	require.Len(t, alertsList, 1)

	alert := alertsList[0].(map[string]interface{})
	assert.EqualValues(t, 1, alert["product_id"])
	assert.EqualValues(t, 1, alert["warehouse_id"])
	assert.Equal(t, "Bodega Central", alert["warehouse_name"])
	assert.EqualValues(t, 5, alert["current_stock"])
	assert.EqualValues(t, 10, alert["threshold"])
	assert.EqualValues(t, 5.0, alert["days_until_stockout"])

	supplier := alert["supplier"].(map[string]interface{})
	assert.EqualValues(t, 20, supplier["id"])
	assert.Equal(t, "Acme", supplier["name"])
	assert.Equal(t, "ventas@acme.co", supplier["contact_email"])

	_, hasDebug := body["debug"]
	assert.False(t, hasDebug, "sin debug=1 no debe venir el diagnóstico")
}

func TestAlertas_SinProveedorEnlazado_SupplierNull(t *testing.T) {
	s := newAlertScenario()
	s.addAlertableProduct(1, 1, 5, 10, 30)

	resp, body := getJSON(t, s.app(), "/api/companies/7/alerts/low-stock")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	alert := body["alerts"].([]interface{})[0].(map[string]interface{})
	assert.Nil(t, alert["supplier"], "sin enlaces el supplier debe ser null explícito")
}

func TestAlertas_DebugIncluyeFilasDescartadas(t *testing.T) {
	s := newAlertScenario()
	s.addAlertableProduct(1, 1, 5, 10, 30)  // keep
	s.addAlertableProduct(2, 1, 50, 10, 30) // skip: stock sobre umbral

	resp, body := getJSON(t, s.app(), "/api/companies/7/alerts/low-stock?debug=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, body["total_alerts"])
	debug := body["debug"].([]interface{})
	require.Len(t, debug, 2, "debug debe cubrir todas las filas escaneadas")

	kept := debug[0].(map[string]interface{})
	assert.Equal(t, "keep", kept["decision"])
	assert.Nil(t, kept["reason_if_skip"])

	skipped := debug[1].(map[string]interface{})
	assert.Equal(t, "skip", skipped["decision"])
	reasons := skipped["reason_if_skip"].([]interface{})
	assert.Contains(t, reasons, "stock_not_below_threshold")
}

func TestAlertas_DebugDistintoDeUno_NoActiva(t *testing.T) {
	s := newAlertScenario()
	s.addAlertableProduct(1, 1, 5, 10, 30)

	resp, body := getJSON(t, s.app(), "/api/companies/7/alerts/low-stock?debug=true")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, hasDebug := body["debug"]
	assert.False(t, hasDebug, "solo debug=1 activa el diagnóstico")
}

func TestAlertas_FiltroPorBodega(t *testing.T) {
	s := newAlertScenario()
	s.addAlertableProduct(1, 1, 5, 10, 30)
	s.addAlertableProduct(2, 2, 5, 10, 30)

	resp, body := getJSON(t, s.app(), "/api/companies/7/alerts/low-stock?warehouse_id=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, body["total_alerts"])
	alert := body["alerts"].([]interface{})[0].(map[string]interface{})
	assert.EqualValues(t, 2, alert["warehouse_id"])
}
