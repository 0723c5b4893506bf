package service

import (
	"cotizador/internal/catalog"
	"cotizador/internal/domain"
	"cotizador/internal/pricing"
)

// ComputeQuoteInput is the DTO for quote computation requests.
type ComputeQuoteInput struct {
	Product     domain.ProductCode `json:"product" binding:"required"`
	Tier        domain.Tier        `json:"tier"`
	FamilyGroup string             `json:"family_group"`
	Plan        string             `json:"plan"`
	Coverages   []string           `json:"coverages"`
}

// QuoteService computes premiums from the product catalog.
type QuoteService interface {
	Compute(input ComputeQuoteInput) (domain.Quote, error)
	Products() []ProductInfo
}

// ProductInfo describes one quotable product to the widgets.
type ProductInfo struct {
	Code         domain.ProductCode      `json:"code"`
	Name         string                  `json:"name"`
	PricingMode  domain.PricingMode      `json:"pricing_mode"`
	FamilyGroups []string                `json:"family_groups,omitempty"`
	Coverages    []domain.CoverageOption `json:"coverages,omitempty"`
	TotalSteps   int                     `json:"total_steps"`
}

type quoteService struct {
	catalog *catalog.Catalog
}

// NewQuoteService creates a new QuoteService implementation.
func NewQuoteService(cat *catalog.Catalog) QuoteService {
	return &quoteService{catalog: cat}
}

// Compute rebuilds the quote in full from the current selections. No state
// is read from anywhere else, which keeps repeated calls identical.
func (s *quoteService) Compute(input ComputeQuoteInput) (domain.Quote, error) {
	product, err := s.catalog.Product(input.Product)
	if err != nil {
		return domain.Quote{}, err
	}
	engine := product.PricingEngine()
	return engine.ComputeQuote(product.Code, pricing.Input{
		Tier:        input.Tier,
		FamilyGroup: input.FamilyGroup,
		Plan:        input.Plan,
		Coverages:   input.Coverages,
	}), nil
}

func (s *quoteService) Products() []ProductInfo {
	var out []ProductInfo
	for _, p := range s.catalog.All() {
		out = append(out, ProductInfo{
			Code:         p.Code,
			Name:         p.Name,
			PricingMode:  p.PricingMode,
			FamilyGroups: p.FamilyGroups,
			Coverages:    p.Coverages,
			TotalSteps:   len(p.Steps),
		})
	}
	return out
}
