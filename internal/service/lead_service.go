package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"cotizador/internal/catalog"
	"cotizador/internal/domain"
	"cotizador/internal/port"
	"cotizador/internal/pricing"
	"cotizador/internal/rules"
)

// SubmitLeadInput is the DTO for lead submission. Personal data comes from
// the journey's stored snapshot; only the priced selections travel here.
type SubmitLeadInput struct {
	SessionID   uuid.UUID   `json:"session_id" binding:"required"`
	Tier        domain.Tier `json:"tier"`
	FamilyGroup string      `json:"family_group"`
	Plan        string      `json:"plan"`
	Coverages   []string    `json:"coverages"`
}

// SubmitResult reports the outcome of one submission attempt. Violations are
// data, never errors; Blocked marks the hard business denial surfaced via a
// modal instead of inline field text.
type SubmitResult struct {
	Valid      bool               `json:"valid"`
	Blocked    bool               `json:"blocked,omitempty"`
	Violations []domain.Violation `json:"violations,omitempty"`
	Quote      domain.Quote       `json:"quote"`
	Lead       *domain.Lead       `json:"lead,omitempty"`
}

// LeadService validates a finished journey and submits the lead to the CRM.
type LeadService interface {
	Submit(ctx context.Context, input SubmitLeadInput) (*SubmitResult, error)
}

type leadService struct {
	catalog  *catalog.Catalog
	sessions port.SessionRepository
	leads    port.LeadRepository
	regions  port.RegionDirectory
	sender   port.LeadSender
	emails   port.EmailSender
}

// NewLeadService creates a new LeadService implementation.
func NewLeadService(
	cat *catalog.Catalog,
	sessions port.SessionRepository,
	leads port.LeadRepository,
	regions port.RegionDirectory,
	sender port.LeadSender,
	emails port.EmailSender,
) LeadService {
	return &leadService{
		catalog:  cat,
		sessions: sessions,
		leads:    leads,
		regions:  regions,
		sender:   sender,
		emails:   emails,
	}
}

// Submit re-validates every step over the stored snapshot, computes the
// final quote, records the attempt and posts it to the CRM. A failed post is
// stored with status failed and the caller prompts a manual retry; nothing
// is queued for automatic redelivery.
func (s *leadService) Submit(ctx context.Context, input SubmitLeadInput) (*SubmitResult, error) {
	session, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	product, err := s.catalog.Product(session.Product)
	if err != nil {
		return nil, err
	}

	snap, err := mergeSnapshot(session.Fields, nil)
	if err != nil {
		return nil, err
	}

	// Full re-validation: the live form may have drifted since the last
	// advance, and the blocking denylist must preempt submission.
	var violations []domain.Violation
	for _, validator := range product.StepValidators(s.regions) {
		result := validator.Validate(snap)
		if len(result.Violations) > 0 && result.Violations[0].Blocking {
			return &SubmitResult{Blocked: true, Violations: result.Violations}, nil
		}
		violations = append(violations, result.Violations...)
	}
	if len(violations) > 0 {
		return &SubmitResult{Violations: violations}, nil
	}

	quote := product.PricingEngine().ComputeQuote(product.Code, pricing.Input{
		Tier:        input.Tier,
		FamilyGroup: input.FamilyGroup,
		Plan:        input.Plan,
		Coverages:   input.Coverages,
	})

	lead := leadFromSnapshot(product, snap, quote)
	lead.Status = domain.LeadStatusPending
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	if err := s.sender.SendLead(ctx, lead); err != nil {
		log.Printf("lead %s: CRM submission failed: %v", lead.ID, err)
		lead.Status = domain.LeadStatusFailed
		lead.FailureReason = err.Error()
		if uerr := s.leads.UpdateStatus(ctx, lead.ID, lead.Status, lead.FailureReason); uerr != nil {
			log.Printf("lead %s: status update failed: %v", lead.ID, uerr)
		}
		return &SubmitResult{Valid: true, Quote: quote, Lead: lead}, nil
	}

	lead.Status = domain.LeadStatusAccepted
	if err := s.leads.UpdateStatus(ctx, lead.ID, lead.Status, ""); err != nil {
		log.Printf("lead %s: status update failed: %v", lead.ID, err)
	}

	// Confirmation email is best effort; the submission already succeeded.
	if quote.Priced && lead.Email != "" {
		if err := s.emails.SendQuoteEmail(ctx, lead.Email, lead.FullName, quote); err != nil {
			log.Printf("lead %s: quote email failed: %v", lead.ID, err)
		}
	}

	return &SubmitResult{Valid: true, Quote: quote, Lead: lead}, nil
}

// leadFromSnapshot maps the shared personal-data field ids into a normalized
// lead record. The city field holds "<municipality> - <department>".
func leadFromSnapshot(product *catalog.ProductConfig, snap domain.FormSnapshot, quote domain.Quote) *domain.Lead {
	city := snap.Str("ciudad")
	department := ""
	if muni, dept, ok := rules.SplitRegionPair(city); ok {
		city, department = muni, dept
	}

	fullName := strings.TrimSpace(snap.Str("nombres") + " " + snap.Str("apellidos"))

	return &domain.Lead{
		Product:        product.Code,
		CampaignTag:    product.CampaignTag,
		FullName:       fullName,
		DocumentType:   snap.Str("tipo_documento"),
		DocumentNumber: snap.Str("numero_documento"),
		Email:          snap.Str("correo"),
		Phone:          snap.Str("celular"),
		City:           city,
		Department:     department,
		QuoteTotal:     quote.Total,
	}
}
