package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"cotizador/internal/config"
	"cotizador/internal/domain"
	"cotizador/internal/port"
)

// leadPayload is the normalized record the CRM expects.
type leadPayload struct {
	Name                string            `json:"name"`
	DocumentIdentifiers map[string]string `json:"documentIdentifiers"`
	Contact             contactPayload    `json:"contact"`
	ProductCode         string            `json:"productCode"`
	CampaignTag         string            `json:"campaignTag"`
	QuoteTotal          int64             `json:"quoteTotal,omitempty"`
}

type contactPayload struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city,omitempty"`
	Department string `json:"department,omitempty"`
}

type httpSender struct {
	http *resty.Client
	path string
}

// NewHTTPSender creates a LeadSender posting to the remote CRM lead service.
func NewHTTPSender(cfg *config.CRMConfig) port.LeadSender {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSecs) * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", cfg.APIKey)

	return &httpSender{http: client, path: cfg.LeadPath}
}

// SendLead posts the lead. Success and failure surface as a binary outcome;
// a failed submission is never persisted remotely and the user resubmits.
func (s *httpSender) SendLead(ctx context.Context, lead *domain.Lead) error {
	payload := leadPayload{
		Name: lead.FullName,
		DocumentIdentifiers: map[string]string{
			"type":   lead.DocumentType,
			"number": lead.DocumentNumber,
		},
		Contact: contactPayload{
			Email:      lead.Email,
			Phone:      lead.Phone,
			City:       lead.City,
			Department: lead.Department,
		},
		ProductCode: string(lead.Product),
		CampaignTag: lead.CampaignTag,
		QuoteTotal:  lead.QuoteTotal,
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(s.path)
	if err != nil {
		return fmt.Errorf("crm.SendLead: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("crm.SendLead: CRM returned %d: %w", resp.StatusCode(), domain.ErrLeadRejected)
	}
	return nil
}
