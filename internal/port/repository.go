package port

import (
	"context"

	"github.com/google/uuid"

	"cotizador/internal/domain"
)

// SessionRepository persists widget journey state between step transitions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.QuoteSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QuoteSession, error)
	Update(ctx context.Context, session *domain.QuoteSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LeadRepository records CRM submission attempts and their outcomes.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus, failureReason string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, product domain.ProductCode, offset, limit int) ([]domain.Lead, int, error)
	ListAll(ctx context.Context, product domain.ProductCode) ([]domain.Lead, error)
}

// UserRepository manages admin-surface accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
