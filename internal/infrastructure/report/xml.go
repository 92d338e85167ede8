package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// XML genera el reporte como documento XML plano para consumo de ERPs.
//
//	<low_stock_report company_id="7" company_name="..." generated_at="...">
//	  <alerts total="2">
//	    <alert product_id="..." warehouse_id="...">
//	      <sku>...</sku> ... <supplier id="..."> ... </supplier>
//	    </alert>
//	  </alerts>
//	</low_stock_report>
func (g *Generator) XML(_ context.Context, company *entity.Company, report *dto.LowStockAlertsResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("low_stock_report")
	root.CreateAttr("company_id", strconv.FormatInt(company.ID, 10))
	root.CreateAttr("company_name", company.Name)
	root.CreateAttr("generated_at", g.now().UTC().Format("2006-01-02T15:04:05Z"))

	alertsEl := root.CreateElement("alerts")
	alertsEl.CreateAttr("total", strconv.Itoa(report.TotalAlerts))

	for _, a := range report.Alerts {
		el := alertsEl.CreateElement("alert")
		el.CreateAttr("product_id", strconv.FormatInt(a.ProductID, 10))
		el.CreateAttr("warehouse_id", strconv.FormatInt(a.WarehouseID, 10))
		el.CreateElement("sku").SetText(a.SKU)
		el.CreateElement("product_name").SetText(a.ProductName)
		el.CreateElement("warehouse_name").SetText(a.WarehouseName)
		el.CreateElement("current_stock").SetText(formatFloat(a.CurrentStock))
		el.CreateElement("threshold").SetText(formatFloat(a.Threshold))
		if a.DaysUntilStockout != nil {
			el.CreateElement("days_until_stockout").SetText(formatFloat(*a.DaysUntilStockout))
		}
		if a.Supplier != nil {
			sup := el.CreateElement("supplier")
			sup.CreateAttr("id", strconv.FormatInt(a.Supplier.ID, 10))
			sup.CreateElement("name").SetText(a.Supplier.Name)
			sup.CreateElement("contact_email").SetText(a.Supplier.ContactEmail)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("report: generar xml: %w", err)
	}
	return out, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
