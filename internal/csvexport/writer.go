package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"cotizador/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (13 columns).
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

// Writer wraps csv.Writer for exporting leads as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 13-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteLeads converts a batch of leads to CSV rows and writes them.
func (w *Writer) WriteLeads(leads []domain.Lead) error {
	for i := range leads {
		row := leadToRow(&leads[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// leadToRow converts a single lead to a 13-element string slice.
func leadToRow(lead *domain.Lead) []string {
	return []string{
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
		strconv.FormatInt(lead.QuoteTotal, 10),
		string(lead.Status),
		lead.CreatedAt.Format(time.RFC3339),
	}
}
