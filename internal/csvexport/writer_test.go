package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotizador/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 13)
	assert.Equal(t, "Lead ID", row[0])
	assert.Equal(t, "Quote Total", row[10])
	assert.Equal(t, "Created At", row[12])
}

func TestWriteLeads(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)
	leads := []domain.Lead{
		{
			ID:             uuid.New(),
			Product:        domain.ProductExequias,
			CampaignTag:    "exequias-web",
			FullName:       "Ana María Pérez",
			DocumentType:   "CC",
			DocumentNumber: "52123456",
			Email:          "ana@example.com",
			Phone:          "3001234567",
			City:           "Medellín",
			Department:     "Antioquia",
			QuoteTotal:     575000,
			Status:         domain.LeadStatusAccepted,
			CreatedAt:      created,
		},
		{
			ID:         uuid.New(),
			Product:    domain.ProductDeudores,
			FullName:   "Carlos Ruiz",
			QuoteTotal: 0,
			Status:     domain.LeadStatusFailed,
			CreatedAt:  created,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteLeads(leads))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, leads[0].ID.String(), rows[1][0])
	assert.Equal(t, "exequias", rows[1][1])
	assert.Equal(t, "Ana María Pérez", rows[1][3])
	assert.Equal(t, "575000", rows[1][10])
	assert.Equal(t, "accepted", rows[1][11])
	assert.Equal(t, "2026-08-30T10:15:00Z", rows[1][12])

	assert.Equal(t, "Carlos Ruiz", rows[2][3])
	assert.Equal(t, "0", rows[2][10])
	assert.Equal(t, "failed", rows[2][11])
}

func TestWriteLeads_QuotesSeparators(t *testing.T) {
	leads := []domain.Lead{
		{
			ID:        uuid.New(),
			Product:   domain.ProductViajero,
			FullName:  `Pérez, "El Viajero"`,
			Status:    domain.LeadStatusAccepted,
			CreatedAt: time.Now().UTC(),
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteLeads(leads))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `Pérez, "El Viajero"`, rows[0][3])
}
