package crm

import (
	"context"
	"log"

	"cotizador/internal/domain"
	"cotizador/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op LeadSender that logs leads to stdout.
func NewNoopSender() port.LeadSender {
	return &noopSender{}
}

func (s *noopSender) SendLead(_ context.Context, lead *domain.Lead) error {
	log.Printf("[NOOP CRM] lead %s: %s <%s> product=%s campaign=%s total=%d",
		lead.ID, lead.FullName, lead.Email, lead.Product, lead.CampaignTag, lead.QuoteTotal)
	return nil
}
