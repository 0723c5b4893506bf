package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cotizador/internal/domain"
	"cotizador/internal/port"
)

type leadRepo struct {
	db *sqlx.DB
}

// NewLeadRepo creates a new PostgreSQL-backed LeadRepository.
func NewLeadRepo(db *sqlx.DB) port.LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	lead.ID = uuid.New()
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	query := `INSERT INTO leads (id, product, campaign_tag, full_name, document_type, document_number,
		email, phone, city, department, quote_total, status, failure_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		lead.ID, lead.Product, lead.CampaignTag, lead.FullName, lead.DocumentType,
		lead.DocumentNumber, lead.Email, lead.Phone, lead.City, lead.Department,
		lead.QuoteTotal, lead.Status, lead.FailureReason, lead.CreatedAt, lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("leadRepo.Create: %w", err)
	}
	return nil
}

func (r *leadRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus, failureReason string) error {
	query := `UPDATE leads SET status = $1, failure_reason = $2, updated_at = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, status, failureReason, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("leadRepo.UpdateStatus: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("leadRepo.UpdateStatus rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *leadRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.GetContext(ctx, &lead, "SELECT * FROM leads WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leadRepo.GetByID: %w", err)
	}
	return &lead, nil
}

func (r *leadRepo) List(ctx context.Context, product domain.ProductCode, offset, limit int) ([]domain.Lead, int, error) {
	where := ""
	args := []interface{}{}
	if product != "" {
		where = " WHERE product = $1"
		args = append(args, product)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM leads"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("leadRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM leads%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var leads []domain.Lead
	err = r.db.SelectContext(ctx, &leads, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("leadRepo.List: %w", err)
	}
	return leads, total, nil
}

func (r *leadRepo) ListAll(ctx context.Context, product domain.ProductCode) ([]domain.Lead, error) {
	var leads []domain.Lead
	var err error
	if product != "" {
		err = r.db.SelectContext(ctx, &leads,
			"SELECT * FROM leads WHERE product = $1 ORDER BY created_at DESC", product)
	} else {
		err = r.db.SelectContext(ctx, &leads,
			"SELECT * FROM leads ORDER BY created_at DESC")
	}
	if err != nil {
		return nil, fmt.Errorf("leadRepo.ListAll: %w", err)
	}
	return leads, nil
}
