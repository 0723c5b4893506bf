package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldRule is a single named check over one form field. The Kind selects
// which parameters apply; rules are immutable once defined in the catalog.
type FieldRule struct {
	FieldID string   `json:"field_id"`
	Kind    RuleKind `json:"kind"`
	Scope   RuleScope `json:"scope"`
	Message string   `json:"message"`

	// Regex rules
	Pattern string `json:"pattern,omitempty"`

	// NumericRange rules (whole currency units, separators stripped on parse)
	Min int64 `json:"min,omitempty"`
	Max int64 `json:"max,omitempty"`

	// DateRange rules (age in whole years computed from the birth date)
	MinAge int `json:"min_age,omitempty"`
	MaxAge int `json:"max_age,omitempty"`

	// ConfirmEqual rules: the field this one must match. The violation is
	// attributed to FieldID (the confirmation field), not OtherFieldID.
	OtherFieldID string `json:"other_field_id,omitempty"`

	// BlockedDoc rules: denylisted document number plus the issuance date
	// that triggers the hard denial.
	BlockedValue string `json:"blocked_value,omitempty"`
	BlockedDate  string `json:"blocked_date,omitempty"`
}

// Violation reports one failed rule attributed to a field. Produced, never
// mutated; consumed to drive widget error display.
type Violation struct {
	FieldID  string   `json:"field_id"`
	Kind     RuleKind `json:"kind"`
	Message  string   `json:"message"`
	Blocking bool     `json:"blocking,omitempty"`
}

// FormSnapshot is the set of field values at validation time. The live form
// is the source of truth; a snapshot is read-only once taken.
type FormSnapshot map[string]any

// Str returns the trimmed string value of a field, or "" when absent.
func (s FormSnapshot) Str(fieldID string) string {
	v, ok := s[fieldID]
	if !ok || v == nil {
		return ""
	}
	str, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(str)
}

// Bool returns the boolean value of a field (checkbox state).
func (s FormSnapshot) Bool(fieldID string) bool {
	v, ok := s[fieldID]
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "on"
	}
	return false
}

// Empty reports whether the field is missing, an empty string, or an
// unchecked checkbox.
func (s FormSnapshot) Empty(fieldID string) bool {
	v, ok := s[fieldID]
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case bool:
		return !t
	}
	return false
}

// CoverageOption is one optional add-on benefit offered by a product.
type CoverageOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RateTable is the static nested price mapping:
// family group → coverage (or plan) → tier → price in whole currency units.
// Loaded at construction, never mutated at runtime.
type RateTable map[string]map[string]map[Tier]int64

// Price returns the configured price, or 0 when the combination is absent.
// A missing entry means the combination is not offered, not an error.
func (t RateTable) Price(familyGroup, item string, tier Tier) int64 {
	items, ok := t[familyGroup]
	if !ok {
		return 0
	}
	tiers, ok := items[item]
	if !ok {
		return 0
	}
	return tiers[tier]
}

// Quote is a fully derived premium. It is always recomputed from scratch;
// Priced=false is the "unpriced" sentinel, distinct from a computed 0.
type Quote struct {
	Product     ProductCode `json:"product"`
	Tier        Tier        `json:"tier,omitempty"`
	FamilyGroup string      `json:"family_group,omitempty"`
	Plan        string      `json:"plan,omitempty"`
	Coverages   []string    `json:"coverages,omitempty"`
	Total       int64       `json:"total"`
	Priced      bool        `json:"priced"`
}

// LookupEntry is one region or subdivision reference record. Entries are
// immutable after the one-shot load.
type LookupEntry struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name"`
}

// DisplayName returns "<name> - <parent name>" for subdivisions whose parent
// resolves, degrading to the raw parent id otherwise.
func (e LookupEntry) DisplayName(parent *LookupEntry) string {
	if e.ParentID == "" {
		return e.Name
	}
	if parent != nil {
		return e.Name + " - " + parent.Name
	}
	return e.Name + " - " + e.ParentID
}

// StepState is the position of a journey inside its step sequence.
type StepState struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// QuoteSession persists one widget journey across step transitions.
type QuoteSession struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Product     ProductCode     `db:"product" json:"product"`
	CurrentStep int             `db:"current_step" json:"current_step"`
	TotalSteps  int             `db:"total_steps" json:"total_steps"`
	Fields      json.RawMessage `db:"fields" json:"fields"`
	Completed   bool            `db:"completed" json:"completed"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// Lead records one CRM submission attempt and its outcome.
type Lead struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	Product        ProductCode `db:"product" json:"product"`
	CampaignTag    string      `db:"campaign_tag" json:"campaign_tag"`
	FullName       string      `db:"full_name" json:"full_name"`
	DocumentType   string      `db:"document_type" json:"document_type"`
	DocumentNumber string      `db:"document_number" json:"document_number"`
	Email          string      `db:"email" json:"email"`
	Phone          string      `db:"phone" json:"phone"`
	City           string      `db:"city" json:"city"`
	Department     string      `db:"department" json:"department"`
	QuoteTotal     int64       `db:"quote_total" json:"quote_total"`
	Status         LeadStatus  `db:"status" json:"status"`
	FailureReason  string      `db:"failure_reason" json:"failure_reason,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

// User is an admin-surface account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
