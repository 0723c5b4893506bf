package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotizador/internal/domain"
	"cotizador/internal/rules"
)

func TestCheckField_Required(t *testing.T) {
	rule := domain.FieldRule{FieldID: "nombres", Kind: domain.RuleRequired, Message: "ingresa tus nombres"}

	v := rules.CheckField(domain.FormSnapshot{}, rule)
	require.NotNil(t, v)
	assert.Equal(t, "nombres", v.FieldID)
	assert.Equal(t, "ingresa tus nombres", v.Message)

	v = rules.CheckField(domain.FormSnapshot{"nombres": "   "}, rule)
	assert.NotNil(t, v, "whitespace-only counts as empty")

	v = rules.CheckField(domain.FormSnapshot{"nombres": "Ana"}, rule)
	assert.Nil(t, v)
}

func TestCheckField_Consent(t *testing.T) {
	rule := domain.FieldRule{FieldID: "acepta_politica", Kind: domain.RuleConsent, Message: "debes aceptar"}

	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{}, rule))
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"acepta_politica": false}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"acepta_politica": true}, rule))
}

func TestCheckField_RegexSkipsEmpty(t *testing.T) {
	rule := domain.FieldRule{FieldID: "nombres", Kind: domain.RuleRegex, Pattern: `^[A-Za-z ]+$`, Message: "solo letras"}

	// Format rules never fire on absent values; presence is the required
	// rule's job.
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"nombres": ""}, rule))

	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"nombres": "Ana123"}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"nombres": "Ana Maria"}, rule))
}

func TestCheckField_RegexMustMatchWhole(t *testing.T) {
	rule := domain.FieldRule{FieldID: "doc", Kind: domain.RuleRegex, Pattern: `^[0-9]+$`, Message: "solo números"}

	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"doc": "12a34"}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"doc": "1234567890"}, rule))
}

func TestCheckField_Email(t *testing.T) {
	rule := domain.FieldRule{FieldID: "correo", Kind: domain.RuleEmail, Message: "correo inválido"}

	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"correo": ""}, rule))
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"correo": "not-an-email"}, rule))
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"correo": "a@b"}, rule))
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"correo": "a b@c.com"}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"correo": "ana@example.com"}, rule))
}

func TestCheckField_PhoneLength(t *testing.T) {
	rule := domain.FieldRule{FieldID: "celular", Kind: domain.RulePhoneLength, Message: "mínimo 10 dígitos"}

	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"celular": "301234"}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"celular": "3012345678"}, rule))
	// Separators do not count as digits
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"celular": "301 234 5678"}, rule))
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"celular": "301-234-56"}, rule))
}

func TestCheckField_NumericRange(t *testing.T) {
	rule := domain.FieldRule{
		FieldID: "valor_credito", Kind: domain.RuleNumericRange,
		Min: 500000, Max: 14000000, Message: "fuera de rango",
	}

	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"valor_credito": "499999"}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"valor_credito": "500000"}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"valor_credito": "14000000"}, rule))
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"valor_credito": "14000001"}, rule))

	// Thousand separators are stripped before parsing
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"valor_credito": "1.000.000"}, rule))
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"valor_credito": "1,000,000"}, rule))

	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"valor_credito": "abc"}, rule))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"500000", 500000},
		{"500.000", 500000},
		{"1,234,567", 1234567},
		{"1 000 000", 1000000},
	}
	for _, tc := range cases {
		got, err := rules.ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := rules.ParseAmount("..")
	assert.Error(t, err)
	_, err = rules.ParseAmount("12x34")
	assert.Error(t, err)
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	// Day before the birthday the age has not incremented yet
	assert.Equal(t, 24, rules.AgeAt(birth, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
	// On the birthday it has
	assert.Equal(t, 25, rules.AgeAt(birth, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 25, rules.AgeAt(birth, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCheckField_DateRange(t *testing.T) {
	rule := domain.FieldRule{
		FieldID: "fecha_nacimiento", Kind: domain.RuleDateRange,
		MinAge: 18, MaxAge: 65, Message: "edad fuera de rango",
	}

	tooYoung := time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"fecha_nacimiento": tooYoung}, rule))

	inRange := time.Now().AddDate(-30, 0, 0).Format("2006-01-02")
	assert.Nil(t, rules.CheckField(domain.FormSnapshot{"fecha_nacimiento": inRange}, rule))

	tooOld := time.Now().AddDate(-66, 0, -1).Format("2006-01-02")
	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"fecha_nacimiento": tooOld}, rule))

	assert.NotNil(t, rules.CheckField(domain.FormSnapshot{"fecha_nacimiento": "15/06/2000"}, rule),
		"unparseable dates are violations")
}
