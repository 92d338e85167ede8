package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/money"
)

// stubTxRunner ejecuta el callback directamente sobre los fakes. El corte por
// error replica la semántica transaccional: el alta de producto va primero,
// así que un SKU duplicado impide que se escriba inventario.
type stubTxRunner struct {
	products  *stubProductRepo
	inventory *stubInventoryRepo
}

func (r *stubTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.InventoryRepository) error) error {
	return fn(r.products, r.inventory)
}

type productScenario struct {
	products   *stubProductRepo
	warehouses *stubWarehouseRepo
	inventory  *stubInventoryRepo
}

func newProductScenario() *productScenario {
	return &productScenario{
		products:   newStubProductRepo(),
		warehouses: &stubWarehouseRepo{byID: map[int64]*entity.Warehouse{}},
		inventory:  &stubInventoryRepo{},
	}
}

func (s *productScenario) app() *fiber.App {
	uc := usecase.NewProductUseCase(
		s.products, s.warehouses,
		&stubTxRunner{products: s.products, inventory: s.inventory},
		money.NewParser(),
	)
	handler := apphttp.NewProductHandler(uc)

	app := fiber.New()
	app.Post("/api/products", handler.Create)
	return app
}

func postProduct(t *testing.T, app *fiber.App, payload string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearProducto_Exitoso(t *testing.T) {
	s := newProductScenario()
	resp, body := postProduct(t, s.app(), `{"name":"Café 500g","sku":"CAFE-500","price":"19.995"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Product created", body["message"])
	assert.EqualValues(t, 1, body["product_id"])

	p := s.products.bySKU["CAFE-500"]
	require.NotNil(t, p)
	assert.Equal(t, "20.00", p.Price.StringFixed(2), "el precio se redondea half-up a 2 decimales")
}

func TestCrearProducto_ConInventarioInicial(t *testing.T) {
	s := newProductScenario()
	s.warehouses.byID[3] = &entity.Warehouse{ID: 3, CompanyID: 1, Name: "Central"}

	resp, _ := postProduct(t, s.app(),
		`{"name":"Café","sku":"CAFE-1","price":10.5,"initial_quantity":25,"warehouse_id":3}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, s.inventory.rows, 1)
	assert.EqualValues(t, 3, s.inventory.rows[0].WarehouseID)
	assert.Equal(t, "25", s.inventory.rows[0].Quantity.String())
}

func TestCrearProducto_ValidacionPorCampo(t *testing.T) {
	s := newProductScenario()
	resp, body := postProduct(t, s.app(), `{"name":"","sku":"","price":"abc","initial_quantity":-1}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "required", errs["name"])
	assert.Equal(t, "required", errs["sku"])
	assert.Equal(t, "invalid_decimal", errs["price"])
	assert.Equal(t, "must_be_non_negative_integer", errs["initial_quantity"])
}

func TestCrearProducto_BodegaInexistente_Retorna404(t *testing.T) {
	s := newProductScenario()
	resp, body := postProduct(t, s.app(),
		`{"name":"Café","sku":"CAFE-1","price":"10.00","warehouse_id":99}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "warehouse_not_found", body["error"])
	assert.Empty(t, s.products.byID, "no debe escribirse nada si la bodega no existe")
}

func TestCrearProducto_SKUDuplicado_Retorna409SinEscrituraParcial(t *testing.T) {
	s := newProductScenario()
	s.warehouses.byID[3] = &entity.Warehouse{ID: 3, CompanyID: 1, Name: "Central"}

	resp, _ := postProduct(t, s.app(),
		`{"name":"Café","sku":"CAFE-1","price":"10.00"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postProduct(t, s.app(),
		`{"name":"Otro café","sku":"CAFE-1","price":"12.00","initial_quantity":5,"warehouse_id":3}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "sku_already_exists", body["error"])
	assert.Empty(t, s.inventory.rows, "el conflicto de SKU no debe dejar inventario escrito")
}

func TestCrearProducto_PrecioComoNumeroJSON(t *testing.T) {
	s := newProductScenario()
	resp, _ := postProduct(t, s.app(), `{"name":"Café","sku":"CAFE-N","price":7}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "7.00", s.products.bySKU["CAFE-N"].Price.StringFixed(2))
}

func TestCrearProducto_CuerpoInvalido_Retorna400(t *testing.T) {
	s := newProductScenario()
	resp, body := postProduct(t, s.app(), `{no es json`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotNil(t, body["errors"])
}
