package port

import (
	"context"

	"cotizador/internal/domain"
)

// LeadSender submits a normalized lead record to the remote CRM. The outcome
// is binary: nil means accepted, any error means the user must resubmit.
type LeadSender interface {
	SendLead(ctx context.Context, lead *domain.Lead) error
}
