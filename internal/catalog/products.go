package catalog

import "cotizador/internal/domain"

// Character-gating patterns applied to inputs while typing. Email structure
// has its own rule kind checked on blur.
const (
	namePattern    = `^[A-Za-zÁÉÍÓÚáéíóúÑñÜü ]+$`
	addressPattern = `^[A-Za-z0-9#\- ]+$`
	digitsPattern  = `^[0-9]+$`
)

// TierUnica is the single price column flat-mode products read.
const TierUnica domain.Tier = "unica"

// personalDataRules is the shared step-one battery. The age range and the
// extra product rules differ per widget, so each product appends to a copy.
func personalDataRules(minAge, maxAge int) []domain.FieldRule {
	return []domain.FieldRule{
		{FieldID: "nombres", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa tus nombres"},
		{FieldID: "nombres", Kind: domain.RuleRegex, Scope: domain.ScopeField, Pattern: namePattern, Message: "usa solo letras y espacios"},
		{FieldID: "apellidos", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa tus apellidos"},
		{FieldID: "apellidos", Kind: domain.RuleRegex, Scope: domain.ScopeField, Pattern: namePattern, Message: "usa solo letras y espacios"},
		{FieldID: "numero_documento", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa tu número de documento"},
		{FieldID: "numero_documento", Kind: domain.RuleRegex, Scope: domain.ScopeField, Pattern: digitsPattern, Message: "el documento solo admite números"},
		{FieldID: "fecha_nacimiento", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa tu fecha de nacimiento"},
		{FieldID: "fecha_nacimiento", Kind: domain.RuleDateRange, Scope: domain.ScopeField, MinAge: minAge, MaxAge: maxAge, Message: "la edad no está dentro del rango asegurable"},
		{FieldID: "correo", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa tu correo"},
		{FieldID: "correo", Kind: domain.RuleEmail, Scope: domain.ScopeField, Message: "el correo no tiene un formato válido"},
		{FieldID: "confirmar_correo", Kind: domain.RuleConfirmEqual, Scope: domain.ScopeCrossField, OtherFieldID: "correo", Message: "los correos no coinciden"},
		{FieldID: "celular", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa tu celular"},
		{FieldID: "celular", Kind: domain.RulePhoneLength, Scope: domain.ScopeField, Message: "el celular debe tener al menos 10 dígitos"},
		{FieldID: "ciudad", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa tu ciudad"},
		{FieldID: "ciudad", Kind: domain.RuleRegionPair, Scope: domain.ScopeCrossField, Message: "selecciona una ciudad de la lista"},
		{FieldID: "acepta_politica", Kind: domain.RuleConsent, Scope: domain.ScopeField, Message: "debes aceptar la política de tratamiento de datos"},
	}
}

// Exequias is the funeral insurance widget: summation pricing over family
// groups and optional coverages, plus the hard denylist gate on document
// number and issuance date.
func Exequias() *ProductConfig {
	table := domain.RateTable{
		"soltero": {
			"auxilioFallecimiento": {domain.TierTotal: 380000, domain.TierMas: 320000, domain.TierPlus: 260000, domain.TierEsencial: 200000},
			"asistenciaExequial":   {domain.TierTotal: 105000, domain.TierMas: 90000, domain.TierPlus: 75000, domain.TierEsencial: 60000},
			"asistenciaMascotas":   {domain.TierTotal: 60000, domain.TierMas: 52000, domain.TierPlus: 45000, domain.TierEsencial: 38000},
		},
		"casado": {
			"auxilioFallecimiento": {domain.TierTotal: 450000, domain.TierMas: 380000, domain.TierPlus: 310000, domain.TierEsencial: 240000},
			"asistenciaExequial":   {domain.TierTotal: 125000, domain.TierMas: 105000, domain.TierPlus: 88000, domain.TierEsencial: 70000},
			"asistenciaMascotas":   {domain.TierTotal: 68000, domain.TierMas: 59000, domain.TierPlus: 50000, domain.TierEsencial: 42000},
		},
		"familia": {
			"auxilioFallecimiento": {domain.TierTotal: 520000, domain.TierMas: 440000, domain.TierPlus: 360000, domain.TierEsencial: 280000},
			"asistenciaExequial":   {domain.TierTotal: 150000, domain.TierMas: 128000, domain.TierPlus: 105000, domain.TierEsencial: 84000},
			"asistenciaMascotas":   {domain.TierTotal: 75000, domain.TierMas: 65000, domain.TierPlus: 55000, domain.TierEsencial: 46000},
		},
	}

	personal := personalDataRules(2, 65)
	personal = append(personal, domain.FieldRule{
		FieldID: "numero_documento", Kind: domain.RuleBlockedDoc, Scope: domain.ScopeBlocking,
		OtherFieldID: "fecha_expedicion",
		BlockedValue: "1035850703", BlockedDate: "2020-02-29",
		Message: "en este momento no podemos continuar con tu solicitud",
	})

	return &ProductConfig{
		Code:        domain.ProductExequias,
		Name:        "Seguro Exequial",
		CampaignTag: "web-exequias",
		PricingMode: domain.PricingSum,
		RateTable:   table,
		FamilyGroups: []string{"soltero", "casado", "familia"},
		Coverages: []domain.CoverageOption{
			{ID: "auxilioFallecimiento", Label: "Auxilio por fallecimiento"},
			{ID: "asistenciaExequial", Label: "Asistencia exequial"},
			{ID: "asistenciaMascotas", Label: "Asistencia para mascotas"},
		},
		Steps: []Step{
			{Name: "datos-personales", Rules: personal},
			{Name: "plan-familiar", Rules: []domain.FieldRule{
				{FieldID: "grupo_familiar", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "selecciona tu grupo familiar"},
			}},
			{Name: "resumen"},
		},
		MinAge: 2, MaxAge: 65,
	}
}

// Viajero is the traveler insurance widget. The party-size gate resets trip
// selections instead of failing validation.
func Viajero() *ProductConfig {
	table := domain.RateTable{
		"individual": {
			"asistenciaMedica": {domain.TierTotal: 210000, domain.TierMas: 180000, domain.TierPlus: 150000, domain.TierEsencial: 120000},
			"cancelacion":      {domain.TierTotal: 95000, domain.TierMas: 82000, domain.TierPlus: 68000, domain.TierEsencial: 55000},
			"equipaje":         {domain.TierTotal: 70000, domain.TierMas: 60000, domain.TierPlus: 50000, domain.TierEsencial: 40000},
		},
		"pareja": {
			"asistenciaMedica": {domain.TierTotal: 390000, domain.TierMas: 335000, domain.TierPlus: 280000, domain.TierEsencial: 225000},
			"cancelacion":      {domain.TierTotal: 175000, domain.TierMas: 150000, domain.TierPlus: 126000, domain.TierEsencial: 102000},
			"equipaje":         {domain.TierTotal: 130000, domain.TierMas: 112000, domain.TierPlus: 94000, domain.TierEsencial: 75000},
		},
		"familia": {
			"asistenciaMedica": {domain.TierTotal: 560000, domain.TierMas: 480000, domain.TierPlus: 400000, domain.TierEsencial: 320000},
			"cancelacion":      {domain.TierTotal: 250000, domain.TierMas: 215000, domain.TierPlus: 180000, domain.TierEsencial: 145000},
			"equipaje":         {domain.TierTotal: 185000, domain.TierMas: 160000, domain.TierPlus: 134000, domain.TierEsencial: 108000},
		},
	}

	return &ProductConfig{
		Code:        domain.ProductViajero,
		Name:        "Seguro de Viajero",
		CampaignTag: "web-viajero",
		PricingMode: domain.PricingSum,
		RateTable:   table,
		FamilyGroups: []string{"individual", "pareja", "familia"},
		Coverages: []domain.CoverageOption{
			{ID: "asistenciaMedica", Label: "Asistencia médica en viaje"},
			{ID: "cancelacion", Label: "Cancelación de viaje"},
			{ID: "equipaje", Label: "Protección de equipaje"},
		},
		Steps: []Step{
			{Name: "datos-personales", Rules: personalDataRules(15, 65)},
			{Name: "viaje", Rules: []domain.FieldRule{
				{FieldID: "grupo_viaje", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "selecciona quiénes viajan"},
				{FieldID: "numero_viajeros", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa el número de viajeros"},
				{FieldID: "numero_viajeros", Kind: domain.RuleRegex, Scope: domain.ScopeField, Pattern: digitsPattern, Message: "ingresa solo números"},
			}},
			{Name: "resumen"},
		},
		MinAge: 15, MaxAge: 65,
		MaxPartySize:    5,
		PartySizeField:  "numero_viajeros",
		SelectionFields: []string{"grupo_viaje", "coberturas", "numero_viajeros"},
	}
}

// Deudores is the debtor life insurance widget. The credit amount bounds are
// per-product configuration, not a global constant.
func Deudores() *ProductConfig {
	table := domain.RateTable{
		"titular": {
			"vidaDeudor":       {domain.TierTotal: 340000, domain.TierMas: 290000, domain.TierPlus: 240000, domain.TierEsencial: 190000},
			"incapacidadTotal": {domain.TierTotal: 160000, domain.TierMas: 137000, domain.TierPlus: 114000, domain.TierEsencial: 92000},
			"desempleo":        {domain.TierTotal: 120000, domain.TierMas: 103000, domain.TierPlus: 86000, domain.TierEsencial: 70000},
		},
		"codeudores": {
			"vidaDeudor":       {domain.TierTotal: 610000, domain.TierMas: 520000, domain.TierPlus: 430000, domain.TierEsencial: 340000},
			"incapacidadTotal": {domain.TierTotal: 290000, domain.TierMas: 248000, domain.TierPlus: 206000, domain.TierEsencial: 165000},
			"desempleo":        {domain.TierTotal: 215000, domain.TierMas: 184000, domain.TierPlus: 154000, domain.TierEsencial: 124000},
		},
	}

	credit := []domain.FieldRule{
		{FieldID: "valor_credito", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa el valor del crédito"},
		{FieldID: "valor_credito", Kind: domain.RuleNumericRange, Scope: domain.ScopeField, Min: 500000, Max: 14000000, Message: "el valor debe estar entre $500.000 y $14.000.000"},
		{FieldID: "grupo_deudores", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "selecciona el tipo de deudor"},
	}

	return &ProductConfig{
		Code:        domain.ProductDeudores,
		Name:        "Seguro Vida Deudores",
		CampaignTag: "web-deudores",
		PricingMode: domain.PricingSum,
		RateTable:   table,
		FamilyGroups: []string{"titular", "codeudores"},
		Coverages: []domain.CoverageOption{
			{ID: "vidaDeudor", Label: "Vida deudor"},
			{ID: "incapacidadTotal", Label: "Incapacidad total y permanente"},
			{ID: "desempleo", Label: "Desempleo involuntario"},
		},
		Steps: []Step{
			{Name: "datos-personales", Rules: personalDataRules(18, 70)},
			{Name: "credito", Rules: credit},
			{Name: "resumen"},
		},
		MinAge: 18, MaxAge: 70,
		AmountMin: 500000, AmountMax: 14000000,
	}
}

// Bicicletas is the bicycle insurance widget: one fixed price per plan,
// independent of any other selection.
func Bicicletas() *ProductConfig {
	table := domain.RateTable{
		"planes": {
			"anual":     {TierUnica: 75000},
			"semestral": {TierUnica: 45000},
			"24-horas":  {TierUnica: 5000},
		},
	}

	bike := []domain.FieldRule{
		{FieldID: "plan", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "selecciona un plan"},
		{FieldID: "valor_bicicleta", Kind: domain.RuleRequired, Scope: domain.ScopeField, Message: "ingresa el valor de tu bicicleta"},
		{FieldID: "valor_bicicleta", Kind: domain.RuleNumericRange, Scope: domain.ScopeField, Min: 500000, Max: 5000000, Message: "el valor debe estar entre $500.000 y $5.000.000"},
		{FieldID: "direccion", Kind: domain.RuleRegex, Scope: domain.ScopeField, Pattern: addressPattern, Message: "la dirección admite letras, números, # y -"},
	}

	return &ProductConfig{
		Code:        domain.ProductBicicletas,
		Name:        "Seguro de Bicicletas",
		CampaignTag: "web-bicicletas",
		PricingMode: domain.PricingFlat,
		RateTable:   table,
		FlatGroup:   "planes",
		FlatTier:    TierUnica,
		Steps: []Step{
			{Name: "datos-personales", Rules: personalDataRules(18, 65)},
			{Name: "plan", Rules: bike},
			{Name: "resumen"},
		},
		MinAge: 18, MaxAge: 65,
		AmountMin: 500000, AmountMax: 5000000,
	}
}
