package domain

// ProductCode identifies one of the embeddable quotation widgets.
type ProductCode string

const (
	ProductBicicletas ProductCode = "bicicletas"
	ProductExequias   ProductCode = "exequias"
	ProductViajero    ProductCode = "viajero"
	ProductDeudores   ProductCode = "deudores"
)

// AllProductCodes lists every product the widgets can quote.
var AllProductCodes = []ProductCode{
	ProductBicicletas,
	ProductExequias,
	ProductViajero,
	ProductDeudores,
}

// Tier is a named pricing level within a product.
type Tier string

const (
	TierTotal    Tier = "total"
	TierMas      Tier = "mas"
	TierPlus     Tier = "plus"
	TierEsencial Tier = "esencial"
)

// AllTiers lists the four tiers every summation-mode rate table must cover.
var AllTiers = []Tier{TierTotal, TierMas, TierPlus, TierEsencial}

// RuleKind is the tagged variant selector for a FieldRule.
type RuleKind string

const (
	RuleRequired     RuleKind = "required"
	RuleRegex        RuleKind = "regex"
	RuleEmail        RuleKind = "email"
	RuleNumericRange RuleKind = "numeric_range"
	RuleDateRange    RuleKind = "date_range"
	RulePhoneLength  RuleKind = "phone_length"
	RuleRegionPair   RuleKind = "region_pair"
	RuleConfirmEqual RuleKind = "confirm_equal"
	RuleConsent      RuleKind = "consent"
	RuleBlockedDoc   RuleKind = "blocked_document"
)

// RuleScope determines where a rule runs in the composite ordering.
type RuleScope string

const (
	ScopeBlocking   RuleScope = "blocking"
	ScopeField      RuleScope = "field"
	ScopeCrossField RuleScope = "cross_field"
)

// PricingMode selects the premium computation strategy for a product.
type PricingMode string

const (
	// PricingSum adds the tier price of every selected coverage.
	PricingSum PricingMode = "sum"
	// PricingFlat reads one fixed price per plan, ignoring coverage selections.
	PricingFlat PricingMode = "flat"
)

// LeadStatus tracks the outcome of a CRM submission attempt.
type LeadStatus string

const (
	LeadStatusPending  LeadStatus = "pending"
	LeadStatusAccepted LeadStatus = "accepted"
	LeadStatusFailed   LeadStatus = "failed"
)

// UserRole defines the admin role hierarchy.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAnalyst UserRole = "analyst"
)
