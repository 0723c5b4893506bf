package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"cotizador/internal/domain"
)

// emailStructure is the canonical local@domain.tld shape checked on blur,
// distinct from any character-gating regex applied while typing.
var emailStructure = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func compiledPattern(pattern string) (*regexp.Regexp, error) {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache[pattern] = re
	return re, nil
}

// CheckField validates one field of the snapshot against a single rule.
// It returns nil on pass; callers clear any prior violation for the field.
func CheckField(snap domain.FormSnapshot, rule domain.FieldRule) *domain.Violation {
	switch rule.Kind {
	case domain.RuleRequired, domain.RuleConsent:
		if snap.Empty(rule.FieldID) {
			return violation(rule)
		}
	case domain.RuleRegex:
		return checkRegex(snap.Str(rule.FieldID), rule)
	case domain.RuleEmail:
		if v := snap.Str(rule.FieldID); v != "" && !emailStructure.MatchString(v) {
			return violation(rule)
		}
	case domain.RulePhoneLength:
		return checkPhone(snap.Str(rule.FieldID), rule)
	case domain.RuleNumericRange:
		return checkNumericRange(snap.Str(rule.FieldID), rule)
	case domain.RuleDateRange:
		return checkAgeRange(snap.Str(rule.FieldID), rule)
	}
	return nil
}

func checkRegex(value string, rule domain.FieldRule) *domain.Violation {
	if value == "" {
		return nil
	}
	re, err := compiledPattern(rule.Pattern)
	if err != nil {
		return violation(rule)
	}
	if m := re.FindString(value); m != value {
		return violation(rule)
	}
	return nil
}

func checkPhone(value string, rule domain.FieldRule) *domain.Violation {
	if value == "" {
		return nil
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return violation(rule)
	}
	return nil
}

func checkNumericRange(value string, rule domain.FieldRule) *domain.Violation {
	if value == "" {
		return nil
	}
	n, err := ParseAmount(value)
	if err != nil || n < rule.Min || n > rule.Max {
		return violation(rule)
	}
	return nil
}

func checkAgeRange(value string, rule domain.FieldRule) *domain.Violation {
	if value == "" {
		return nil
	}
	birth, err := time.Parse("2006-01-02", value)
	if err != nil {
		return violation(rule)
	}
	age := AgeAt(birth, time.Now())
	if age < rule.MinAge || age > rule.MaxAge {
		return violation(rule)
	}
	return nil
}

// ParseAmount parses a monetary amount in whole currency units, stripping
// thousand-separator punctuation and spaces.
func ParseAmount(value string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', ' ', ' ':
			return -1
		}
		return r
	}, value)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseInt(cleaned, 10, 64)
}

// AgeAt computes age in whole years at the reference date: calendar year
// difference, decremented by one while the birthday is still ahead.
func AgeAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

func violation(rule domain.FieldRule) *domain.Violation {
	return &domain.Violation{
		FieldID: rule.FieldID,
		Kind:    rule.Kind,
		Message: rule.Message,
	}
}
