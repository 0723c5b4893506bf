package rules

import (
	"strings"

	"cotizador/internal/domain"
	"cotizador/internal/port"
)

// Region pair messages. A malformed input (missing " - " separator) is a
// distinct violation from a pair the directory does not know.
const (
	MsgRegionPairMalformed = "ingresa la ciudad como \"municipio - departamento\""
	MsgRegionPairNotFound  = "no encontramos esa ciudad, selecciona una de la lista"
)

// Result aggregates a validation pass over a form snapshot. ClearedFields
// lists every ruled field that ended the pass without violations, so the
// renderer can drop stale error state.
type Result struct {
	Valid         bool               `json:"valid"`
	Violations    []domain.Violation `json:"violations"`
	ClearedFields []string           `json:"cleared_fields"`
}

// Composite runs an ordered battery of rules over a form snapshot:
// blocking business rules first (short-circuit on match), then required
// presence, then cross-field rules, then format rules on present fields.
// Non-blocking evaluation never stops early so the widget can display every
// error at once.
type Composite struct {
	rules   []domain.FieldRule
	regions port.RegionDirectory
}

// NewComposite builds a Composite over a fixed rule battery. The region
// directory may be nil for forms without region fields.
func NewComposite(rules []domain.FieldRule, regions port.RegionDirectory) *Composite {
	return &Composite{rules: rules, regions: regions}
}

// Validate evaluates the battery against the snapshot.
func (c *Composite) Validate(snap domain.FormSnapshot) Result {
	// Blocking rules preempt everything: a denied submission must not be
	// answered with formatting feedback.
	for _, rule := range c.rules {
		if rule.Scope != domain.ScopeBlocking {
			continue
		}
		if v := c.checkBlocking(snap, rule); v != nil {
			return Result{Valid: false, Violations: []domain.Violation{*v}}
		}
	}

	var violations []domain.Violation
	flagged := map[string]bool{}
	record := func(v *domain.Violation) {
		if v == nil {
			return
		}
		violations = append(violations, *v)
		flagged[v.FieldID] = true
	}

	// Required presence before anything cosmetic: an empty field reports
	// "required", never a misleading format error.
	for _, rule := range c.rules {
		if rule.Kind == domain.RuleRequired || rule.Kind == domain.RuleConsent {
			record(CheckField(snap, rule))
		}
	}

	// Cross-field rules.
	for _, rule := range c.rules {
		if rule.Scope != domain.ScopeCrossField {
			continue
		}
		switch rule.Kind {
		case domain.RuleConfirmEqual:
			record(c.checkConfirmEqual(snap, rule))
		case domain.RuleRegionPair:
			record(c.checkRegionPair(snap, rule))
		}
	}

	// Format rules run last and only on fields that are present; empties
	// were already attributed to the required pass.
	for _, rule := range c.rules {
		if rule.Scope != domain.ScopeField {
			continue
		}
		switch rule.Kind {
		case domain.RuleRequired, domain.RuleConsent:
			continue
		}
		record(CheckField(snap, rule))
	}

	var cleared []string
	seen := map[string]bool{}
	for _, rule := range c.rules {
		if seen[rule.FieldID] || flagged[rule.FieldID] {
			seen[rule.FieldID] = true
			continue
		}
		seen[rule.FieldID] = true
		cleared = append(cleared, rule.FieldID)
	}

	return Result{
		Valid:         len(violations) == 0,
		Violations:    violations,
		ClearedFields: cleared,
	}
}

func (c *Composite) checkBlocking(snap domain.FormSnapshot, rule domain.FieldRule) *domain.Violation {
	if rule.Kind != domain.RuleBlockedDoc {
		return nil
	}
	if snap.Str(rule.FieldID) != rule.BlockedValue {
		return nil
	}
	if rule.OtherFieldID != "" && snap.Str(rule.OtherFieldID) != rule.BlockedDate {
		return nil
	}
	return &domain.Violation{
		FieldID:  rule.FieldID,
		Kind:     rule.Kind,
		Message:  rule.Message,
		Blocking: true,
	}
}

// checkConfirmEqual attributes a mismatch to the confirmation field, not the
// original. Equality is exact and case-sensitive.
func (c *Composite) checkConfirmEqual(snap domain.FormSnapshot, rule domain.FieldRule) *domain.Violation {
	confirm := snap.Str(rule.FieldID)
	original := snap.Str(rule.OtherFieldID)
	if confirm == "" && original == "" {
		return nil
	}
	if confirm != original {
		return violation(rule)
	}
	return nil
}

// checkRegionPair validates "<municipality> - <department>" against the
// loaded directory, case-insensitively. With no directory data the input is
// unverifiable and the check fails closed.
func (c *Composite) checkRegionPair(snap domain.FormSnapshot, rule domain.FieldRule) *domain.Violation {
	value := snap.Str(rule.FieldID)
	if value == "" {
		return nil
	}
	muni, dept, ok := SplitRegionPair(value)
	if !ok {
		return &domain.Violation{FieldID: rule.FieldID, Kind: rule.Kind, Message: MsgRegionPairMalformed}
	}
	if c.regions == nil || !c.regions.Ready() || !c.regions.MunicipalityInDepartment(muni, dept) {
		return &domain.Violation{FieldID: rule.FieldID, Kind: rule.Kind, Message: MsgRegionPairNotFound}
	}
	return nil
}

// SplitRegionPair splits "<municipality> - <department>" on the first " - "
// separator. ok is false when the separator is missing or a side is empty.
func SplitRegionPair(value string) (municipality, department string, ok bool) {
	idx := strings.Index(value, " - ")
	if idx < 0 {
		return "", "", false
	}
	municipality = strings.TrimSpace(value[:idx])
	department = strings.TrimSpace(value[idx+3:])
	if municipality == "" || department == "" {
		return "", "", false
	}
	return municipality, department, true
}
