package alerts

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// Formatos de exportación del reporte.
const (
	FormatPDF = "pdf"
	FormatXML = "xml"
)

// ReportGenerator renderiza el reporte de stock bajo para entrega externa.
type ReportGenerator interface {
	PDF(ctx context.Context, company *entity.Company, report *dto.LowStockAlertsResponse) ([]byte, error)
	XML(ctx context.Context, company *entity.Company, report *dto.LowStockAlertsResponse) ([]byte, error)
}

// ExportUseCase calcula el reporte y lo entrega en un formato de archivo
// (PDF para humanos, XML para integración con ERPs).
type ExportUseCase struct {
	lowStock  *LowStockUseCase
	companies repository.CompanyRepository
	generator ReportGenerator
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(lowStock *LowStockUseCase, companies repository.CompanyRepository, generator ReportGenerator) *ExportUseCase {
	return &ExportUseCase{lowStock: lowStock, companies: companies, generator: generator}
}

// Export ejecuta el reporte (siempre sin debug) y lo renderiza.
// Devuelve los bytes y el content type. Formato desconocido → ErrInvalidInput;
// empresa inexistente → ErrNotFound.
func (uc *ExportUseCase) Export(ctx context.Context, companyID int64, p Params, format string) ([]byte, string, error) {
	if format != FormatPDF && format != FormatXML {
		return nil, "", domain.ErrInvalidInput
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	p.Debug = false
	report, err := uc.lowStock.LowStockAlerts(ctx, companyID, p)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case FormatPDF:
		b, err := uc.generator.PDF(ctx, company, report)
		return b, "application/pdf", err
	default:
		b, err := uc.generator.XML(ctx, company, report)
		return b, "application/xml", err
	}
}
