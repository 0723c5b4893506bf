package xlsxexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"cotizador/internal/domain"
)

// SheetName is the single sheet holding the lead export.
const SheetName = "Leads"

// columns defines the header row (13 columns).
var columns = []string{
	"Lead ID",
	"Product",
	"Campaign",
	"Full Name",
	"Document Type",
	"Document Number",
	"Email",
	"Phone",
	"City",
	"Department",
	"Quote Total",
	"Status",
	"Created At",
}

// WriteLeads builds an XLSX workbook with one row per lead and returns the
// serialized file bytes.
func WriteLeads(leads []domain.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell %d: %w", i, err)
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return nil, fmt.Errorf("header cell %d: %w", i, err)
		}
	}

	for r := range leads {
		row := leadToRow(&leads[r])
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d: %w", r, c, err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("row %d cell %d: %w", r, c, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// leadToRow converts a single lead to a 13-element value slice. Quote totals
// stay numeric so spreadsheet sums keep working.
func leadToRow(lead *domain.Lead) []any {
	return []any{
		lead.ID.String(),
		string(lead.Product),
		lead.CampaignTag,
		lead.FullName,
		lead.DocumentType,
		lead.DocumentNumber,
		lead.Email,
		lead.Phone,
		lead.City,
		lead.Department,
		lead.QuoteTotal,
		string(lead.Status),
		lead.CreatedAt.Format(time.RFC3339),
	}
}
