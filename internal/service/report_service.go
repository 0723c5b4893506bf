package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"cotizador/internal/csvexport"
	"cotizador/internal/domain"
	"cotizador/internal/port"
	"cotizador/internal/xlsxexport"
)

// ExportFormat selects the serialization of the lead export.
type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatCSV  ExportFormat = "csv"
)

// ReportService provides the admin lead listing and export.
type ReportService interface {
	ListLeads(ctx context.Context, product domain.ProductCode, offset, limit int) ([]domain.Lead, int, error)
	ExportLeads(ctx context.Context, product domain.ProductCode, format ExportFormat) ([]byte, string, error)
}

type reportService struct {
	leadRepo port.LeadRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(leadRepo port.LeadRepository) ReportService {
	return &reportService{leadRepo: leadRepo}
}

func (s *reportService) ListLeads(ctx context.Context, product domain.ProductCode, offset, limit int) ([]domain.Lead, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.leadRepo.List(ctx, product, offset, limit)
}

// ExportLeads renders every matching lead in the requested format and returns
// the bytes with a timestamped filename. Unknown formats fall back to XLSX.
func (s *reportService) ExportLeads(ctx context.Context, product domain.ProductCode, format ExportFormat) ([]byte, string, error) {
	leads, err := s.leadRepo.ListAll(ctx, product)
	if err != nil {
		return nil, "", err
	}

	if format != FormatCSV {
		format = FormatXLSX
	}

	var data []byte
	switch format {
	case FormatCSV:
		data, err = writeLeadsCSV(leads)
	default:
		data, err = xlsxexport.WriteLeads(leads)
	}
	if err != nil {
		return nil, "", fmt.Errorf("report.ExportLeads: %w", err)
	}

	name := fmt.Sprintf("leads_%s.%s", time.Now().Format("20060102_150405"), format)
	if product != "" {
		name = fmt.Sprintf("leads_%s_%s.%s", product, time.Now().Format("20060102_150405"), format)
	}
	return data, name, nil
}

func writeLeadsCSV(leads []domain.Lead) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(csvexport.BOM)

	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, err
	}
	if err := w.WriteLeads(leads); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
