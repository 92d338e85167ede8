package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// AlertHandler expone el reporte de stock bajo. Este endpoint conserva el
// contrato de respuesta original de stockflow (cuerpos {"error": "..."}),
// distinto del dto.ErrorResponse del resto de la API.
type AlertHandler struct {
	uc     *alerts.LowStockUseCase
	export *alerts.ExportUseCase
}

// NewAlertHandler construye el handler de alertas.
func NewAlertHandler(uc *alerts.LowStockUseCase, export *alerts.ExportUseCase) *AlertHandler {
	return &AlertHandler{uc: uc, export: export}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Tags         alerts
// @Produce      json
// @Param        company_id     path   int     true   "ID de la empresa"
// @Param        lookback_days  query  int     false  "Ventana de ventas en días"  default(30)
// @Param        limit          query  int     false  "Máximo de alertas"          default(100)
// @Param        warehouse_id   query  int     false  "Filtrar a una bodega"
// @Param        debug          query  string  false  "1 = incluir diagnóstico por fila"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
	}

	p, err := parseAlertParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_warehouse_id"})
	}

	out, err := h.uc.LowStockAlerts(c.Context(), companyID, p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_error", "detail": err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar alertas de stock bajo (PDF o XML)
// @Tags         alerts
// @Produce      application/pdf
// @Param        company_id  path   int     true   "ID de la empresa"
// @Param        format      query  string  false  "pdf | xml"  default(pdf)
// @Success      200  {file}    file
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/companies/{company_id}/alerts/low-stock/export [get]
func (h *AlertHandler) Export(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
	}
	p, err := parseAlertParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_warehouse_id"})
	}
	format := c.Query("format", alerts.FormatPDF)

	body, contentType, err := h.export.Export(c.Context(), companyID, p, format)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_format"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "company_not_found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_error", "detail": err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low-stock-report.`+format+`"`)
	return c.Send(body)
}

// parseAlertParams lee los query params del reporte. warehouse_id no entero
// es el único error de cliente; lookback_days y limit no enteros caen al
// default, como en el sistema original.
func parseAlertParams(c *fiber.Ctx) (alerts.Params, error) {
	p := alerts.Params{
		LookbackDays: c.QueryInt("lookback_days", 0),
		Limit:        c.QueryInt("limit", 0),
		Debug:        c.Query("debug") == "1",
	}
	if raw := c.Query("warehouse_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return alerts.Params{}, err
		}
		p.WarehouseID = id
	}
	return p, nil
}
