package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotizador/internal/catalog"
	"cotizador/internal/domain"
)

func TestDefault_HasAllProducts(t *testing.T) {
	cat := catalog.Default()
	all := cat.All()
	require.Len(t, all, 4)

	for _, code := range domain.AllProductCodes {
		p, err := cat.Product(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, p.Code)
		assert.NotEmpty(t, p.Steps, code)
		assert.NotEmpty(t, p.CampaignTag, code)
	}
}

func TestProduct_Unknown(t *testing.T) {
	cat := catalog.Default()
	_, err := cat.Product("hogar")
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestSumProducts_CoverAllTiers(t *testing.T) {
	cat := catalog.Default()
	for _, p := range cat.All() {
		if p.PricingMode != domain.PricingSum {
			continue
		}
		for _, group := range p.FamilyGroups {
			for _, cov := range p.Coverages {
				for _, tier := range domain.AllTiers {
					price := p.RateTable.Price(group, cov.ID, tier)
					assert.Positive(t, price, "%s %s/%s/%s", p.Code, group, cov.ID, tier)
				}
			}
		}
	}
}

func TestAgeRangesVaryPerProduct(t *testing.T) {
	cat := catalog.Default()

	exequias, _ := cat.Product(domain.ProductExequias)
	assert.Equal(t, 2, exequias.MinAge)
	assert.Equal(t, 65, exequias.MaxAge)

	viajero, _ := cat.Product(domain.ProductViajero)
	assert.Equal(t, 15, viajero.MinAge)

	deudores, _ := cat.Product(domain.ProductDeudores)
	assert.Equal(t, 18, deudores.MinAge)
	assert.Equal(t, 70, deudores.MaxAge)
}

func TestViajero_PartySizeGateConfigured(t *testing.T) {
	viajero, _ := catalog.Default().Product(domain.ProductViajero)

	assert.Equal(t, 5, viajero.MaxPartySize)
	assert.Equal(t, "numero_viajeros", viajero.PartySizeField)
	assert.Contains(t, viajero.SelectionFields, "grupo_viaje")
	assert.Contains(t, viajero.SelectionFields, "numero_viajeros")
}

func TestDeudores_CreditBounds(t *testing.T) {
	deudores, _ := catalog.Default().Product(domain.ProductDeudores)
	assert.Equal(t, int64(500000), deudores.AmountMin)
	assert.Equal(t, int64(14000000), deudores.AmountMax)
}

func TestStepValidators_OnePerStep(t *testing.T) {
	exequias, _ := catalog.Default().Product(domain.ProductExequias)
	validators := exequias.StepValidators(nil)
	assert.Len(t, validators, len(exequias.Steps))
}

func TestExequias_BlockingRulePresent(t *testing.T) {
	exequias, _ := catalog.Default().Product(domain.ProductExequias)

	found := false
	for _, step := range exequias.Steps {
		for _, rule := range step.Rules {
			if rule.Kind == domain.RuleBlockedDoc {
				found = true
				assert.Equal(t, domain.ScopeBlocking, rule.Scope)
				assert.Equal(t, "numero_documento", rule.FieldID)
				assert.Equal(t, "fecha_expedicion", rule.OtherFieldID)
			}
		}
	}
	assert.True(t, found)
}
