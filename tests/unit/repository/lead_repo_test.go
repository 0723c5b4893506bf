package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotizador/internal/domain"
	"cotizador/internal/port"
	"cotizador/internal/repository/postgres"
)

func setupLeadRepo(t *testing.T) (sqlmock.Sqlmock, port.LeadRepository, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return mock, postgres.NewLeadRepo(sqlxDB), func() { _ = db.Close() }
}

func leadColumns() []string {
	return []string{
		"id", "product", "campaign_tag", "full_name", "document_type",
		"document_number", "email", "phone", "city", "department",
		"quote_total", "status", "failure_reason", "created_at", "updated_at",
	}
}

func TestLeadRepo_Create_AssignsIDAndTimestamps(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	lead := &domain.Lead{
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
		Status:         domain.LeadStatusPending,
	}

	mock.ExpectExec(`INSERT INTO leads`).
		WithArgs(sqlmock.AnyArg(), lead.Product, lead.CampaignTag, lead.FullName,
			lead.DocumentType, lead.DocumentNumber, lead.Email, lead.Phone,
			lead.City, lead.Department, lead.QuoteTotal, lead.Status, "",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), lead)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepo_UpdateStatus_Success(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec(`UPDATE leads SET status`).
		WithArgs(domain.LeadStatusAccepted, "", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, domain.LeadStatusAccepted, "")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec(`UPDATE leads SET status`).
		WithArgs(domain.LeadStatusFailed, "crm timeout", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, domain.LeadStatusFailed, "crm timeout")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeadRepo_GetByID_Success(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	id := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows(leadColumns()).AddRow(
		id, "exequias", "exequias-web", "Ana María Pérez", "CC",
		"52123456", "ana@example.com", "3001234567", "Medellín", "Antioquia",
		int64(575000), "accepted", "", now, now,
	)

	mock.ExpectQuery(`SELECT \* FROM leads WHERE id`).
		WithArgs(id).
		WillReturnRows(rows)

	lead, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, lead.ID)
	assert.Equal(t, domain.ProductExequias, lead.Product)
	assert.Equal(t, int64(575000), lead.QuoteTotal)
	assert.Equal(t, domain.LeadStatusAccepted, lead.Status)
}

func TestLeadRepo_GetByID_NotFound(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM leads WHERE id`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(leadColumns()))

	lead, err := repo.GetByID(context.Background(), id)

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeadRepo_List_WithProductFilter(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads WHERE product`).
		WithArgs(domain.ProductViajero).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	rows := sqlmock.NewRows(leadColumns()).AddRow(
		uuid.New(), "viajero", "viajero-web", "Carlos Ruiz", "CE",
		"998877", "carlos@example.com", "3109876543", "Bogotá", "Bogotá D.C.",
		int64(120000), "accepted", "", now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM leads WHERE product .* ORDER BY created_at DESC LIMIT`).
		WithArgs(domain.ProductViajero, 10, 0).
		WillReturnRows(rows)

	leads, total, err := repo.List(context.Background(), domain.ProductViajero, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, leads, 1)
	assert.Equal(t, "Carlos Ruiz", leads[0].FullName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepo_List_NoFilter(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM leads ORDER BY created_at DESC LIMIT`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(leadColumns()))

	leads, total, err := repo.List(context.Background(), "", 0, 50)

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, leads)
}

func TestLeadRepo_ListAll_WithProductFilter(t *testing.T) {
	mock, repo, cleanup := setupLeadRepo(t)
	defer cleanup()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(leadColumns()).AddRow(
		uuid.New(), "bicicletas", "bicicletas-web", "Luisa Gómez", "CC",
		"1020304050", "luisa@example.com", "3201112233", "Envigado", "Antioquia",
		int64(75000), "accepted", "", now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM leads WHERE product .* ORDER BY created_at DESC`).
		WithArgs(domain.ProductBicicletas).
		WillReturnRows(rows)

	leads, err := repo.ListAll(context.Background(), domain.ProductBicicletas)

	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, int64(75000), leads[0].QuoteTotal)
}
