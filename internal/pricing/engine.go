package pricing

import "cotizador/internal/domain"

// Input carries the current selections a premium is computed from. A Quote
// is always rebuilt in full from an Input; there is no incremental update
// path, which rules out stale totals.
type Input struct {
	Tier        domain.Tier `json:"tier"`
	FamilyGroup string      `json:"family_group"`
	Plan        string      `json:"plan"`
	Coverages   []string    `json:"coverages"`
}

// Engine computes premiums from a static rate table using one of two
// strategies over the same table shape: summation over selected coverages,
// or a flat per-plan lookup.
type Engine struct {
	table     domain.RateTable
	mode      domain.PricingMode
	flatGroup string
	flatTier  domain.Tier
}

// NewSumEngine builds a summation-mode engine (funeral, traveler, debtor
// products): the total is the sum of each selected coverage's tier price.
func NewSumEngine(table domain.RateTable) *Engine {
	return &Engine{table: table, mode: domain.PricingSum}
}

// NewFlatEngine builds a flat-lookup engine (bicycle product): one fixed
// price per plan, read from table[group][plan][tier], independent of any
// coverage selection.
func NewFlatEngine(table domain.RateTable, group string, tier domain.Tier) *Engine {
	return &Engine{table: table, mode: domain.PricingFlat, flatGroup: group, flatTier: tier}
}

// Mode returns the engine's pricing strategy.
func (e *Engine) Mode() domain.PricingMode { return e.mode }

// ComputeQuote derives a Quote from the input selections. When the input is
// not yet computable (no family group or coverages in sum mode, no plan in
// flat mode) it returns the unpriced sentinel rather than a numeric zero.
// Coverages absent from the table contribute zero: the combination is
// treated as not offered, not as an error.
func (e *Engine) ComputeQuote(product domain.ProductCode, in Input) domain.Quote {
	if e.mode == domain.PricingFlat {
		if in.Plan == "" {
			return domain.Quote{Product: product}
		}
		return domain.Quote{
			Product: product,
			Plan:    in.Plan,
			Total:   e.table.Price(e.flatGroup, in.Plan, e.flatTier),
			Priced:  true,
		}
	}

	if in.FamilyGroup == "" || in.Tier == "" || len(in.Coverages) == 0 {
		return domain.Quote{Product: product}
	}

	var total int64
	coverages := make([]string, len(in.Coverages))
	copy(coverages, in.Coverages)
	for _, id := range coverages {
		total += e.table.Price(in.FamilyGroup, id, in.Tier)
	}

	return domain.Quote{
		Product:     product,
		Tier:        in.Tier,
		FamilyGroup: in.FamilyGroup,
		Coverages:   coverages,
		Total:       total,
		Priced:      true,
	}
}
