package report

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

func testGenerator() *Generator {
	g := NewGenerator()
	g.now = func() time.Time { return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC) }
	return g
}

func sampleReport() *dto.LowStockAlertsResponse {
	days := 5.0
	return &dto.LowStockAlertsResponse{
		Alerts: []dto.LowStockAlertDTO{
			{
				ProductID: 1, ProductName: "Café 500g", SKU: "CAFE-500",
				WarehouseID: 3, WarehouseName: "Central",
				CurrentStock: 5, Threshold: 10, DaysUntilStockout: &days,
				Supplier: &dto.AlertSupplierDTO{ID: 20, Name: "Acme", ContactEmail: "ventas@acme.co"},
			},
			{
				ProductID: 2, ProductName: "Azúcar", SKU: "AZU-1",
				WarehouseID: 3, WarehouseName: "Central",
				CurrentStock: 1, Threshold: 4, DaysUntilStockout: &days,
			},
		},
		TotalAlerts: 2,
	}
}

func TestXML_EstructuraDelReporte(t *testing.T) {
	company := &entity.Company{ID: 7, Name: "Tienda Demo"}
	out, err := testGenerator().XML(context.Background(), company, sampleReport())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("low_stock_report")
	require.NotNil(t, root)
	assert.Equal(t, "7", root.SelectAttrValue("company_id", ""))
	assert.Equal(t, "Tienda Demo", root.SelectAttrValue("company_name", ""))
	assert.Equal(t, "2026-03-15T10:30:00Z", root.SelectAttrValue("generated_at", ""))

	alertsEl := root.SelectElement("alerts")
	require.NotNil(t, alertsEl)
	assert.Equal(t, "2", alertsEl.SelectAttrValue("total", ""))

	items := alertsEl.SelectElements("alert")
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "CAFE-500", first.SelectElement("sku").Text())
	assert.Equal(t, "5", first.SelectElement("current_stock").Text())
	assert.Equal(t, "10", first.SelectElement("threshold").Text())
	sup := first.SelectElement("supplier")
	require.NotNil(t, sup)
	assert.Equal(t, "20", sup.SelectAttrValue("id", ""))
	assert.Equal(t, "Acme", sup.SelectElement("name").Text())

	// Sin proveedor enlazado el elemento se omite
	assert.Nil(t, items[1].SelectElement("supplier"))
}

func TestXML_ReporteVacio(t *testing.T) {
	company := &entity.Company{ID: 7, Name: "Tienda Demo"}
	out, err := testGenerator().XML(context.Background(), company, &dto.LowStockAlertsResponse{})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	alertsEl := doc.SelectElement("low_stock_report").SelectElement("alerts")
	require.NotNil(t, alertsEl)
	assert.Equal(t, "0", alertsEl.SelectAttrValue("total", ""))
	assert.Empty(t, alertsEl.SelectElements("alert"))
}

func TestPDF_GeneraDocumentoNoVacio(t *testing.T) {
	company := &entity.Company{ID: 7, Name: "Tienda Demo"}
	out, err := testGenerator().PDF(context.Background(), company, sampleReport())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "el documento debe empezar con el magic number de PDF")
}
