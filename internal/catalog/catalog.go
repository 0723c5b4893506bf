package catalog

import (
	"cotizador/internal/domain"
	"cotizador/internal/port"
	"cotizador/internal/pricing"
	"cotizador/internal/rules"
)

// Step is the rule battery of one journey step.
type Step struct {
	Name  string
	Rules []domain.FieldRule
}

// ProductConfig is the full static configuration of one quotation widget:
// rate table, pricing strategy, per-step rule batteries, and the per-product
// parameters (age range, amount bounds, party limit) the source varies
// deliberately between products. Constructed once, passed by reference into
// the engines, never mutated.
type ProductConfig struct {
	Code        domain.ProductCode
	Name        string
	CampaignTag string

	PricingMode domain.PricingMode
	RateTable   domain.RateTable
	// Flat-mode lookup coordinates; unused in summation mode.
	FlatGroup string
	FlatTier  domain.Tier

	FamilyGroups []string
	Coverages    []domain.CoverageOption
	Steps        []Step

	MinAge    int
	MaxAge    int
	AmountMin int64
	AmountMax int64

	// MaxPartySize triggers the reset-on-overflow gate; 0 disables it.
	// PartySizeField is the snapshot field carrying the party count and
	// SelectionFields are the fields that gate clears.
	MaxPartySize    int
	PartySizeField  string
	SelectionFields []string
}

// PricingEngine builds the engine for this product's strategy.
func (p *ProductConfig) PricingEngine() *pricing.Engine {
	if p.PricingMode == domain.PricingFlat {
		return pricing.NewFlatEngine(p.RateTable, p.FlatGroup, p.FlatTier)
	}
	return pricing.NewSumEngine(p.RateTable)
}

// StepValidators builds one composite validator per step, all sharing the
// region directory.
func (p *ProductConfig) StepValidators(regions port.RegionDirectory) []*rules.Composite {
	validators := make([]*rules.Composite, 0, len(p.Steps))
	for _, step := range p.Steps {
		validators = append(validators, rules.NewComposite(step.Rules, regions))
	}
	return validators
}

// Catalog holds every product configuration, keyed by code.
type Catalog struct {
	products map[domain.ProductCode]*ProductConfig
}

// New builds a catalog from explicit product configurations.
func New(products ...*ProductConfig) *Catalog {
	m := make(map[domain.ProductCode]*ProductConfig, len(products))
	for _, p := range products {
		m[p.Code] = p
	}
	return &Catalog{products: m}
}

// Default returns the catalog of the four shipped widgets.
func Default() *Catalog {
	return New(Bicicletas(), Exequias(), Viajero(), Deudores())
}

// Product returns the configuration for a code.
func (c *Catalog) Product(code domain.ProductCode) (*ProductConfig, error) {
	p, ok := c.products[code]
	if !ok {
		return nil, domain.ErrUnknownProduct
	}
	return p, nil
}

// All returns every configured product.
func (c *Catalog) All() []*ProductConfig {
	out := make([]*ProductConfig, 0, len(c.products))
	for _, code := range domain.AllProductCodes {
		if p, ok := c.products[code]; ok {
			out = append(out, p)
		}
	}
	return out
}
