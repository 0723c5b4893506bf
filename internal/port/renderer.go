package port

import "cotizador/internal/domain"

// Renderer is the engine's boundary to the widget UI layer. The engine calls
// these; it never reads layout or styling state back.
type Renderer interface {
	ShowFieldError(fieldID, message string)
	ClearFieldError(fieldID string)
	RenderStep(index int)
	RenderQuote(quote domain.Quote)
	RenderAutocomplete(results []domain.LookupEntry)
}
