package render

import (
	"cotizador/internal/domain"
	"cotizador/internal/port"
)

// FieldError is one inline error directive for the widget.
type FieldError struct {
	FieldID string `json:"field_id"`
	Message string `json:"message"`
}

// Directives is the accumulated render output of one engine call. The widget
// replays it against the DOM: show/clear field errors, switch the active
// panel, paint the quote, refresh the autocomplete list.
type Directives struct {
	FieldErrors   []FieldError         `json:"field_errors,omitempty"`
	ClearedFields []string             `json:"cleared_fields,omitempty"`
	Step          *int                 `json:"step,omitempty"`
	Quote         *domain.Quote        `json:"quote,omitempty"`
	Autocomplete  []domain.LookupEntry `json:"autocomplete,omitempty"`
}

// Collector is a Renderer that records directives instead of touching any
// UI; HTTP handlers return the collected directives as the response body.
type Collector struct {
	d Directives
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) ShowFieldError(fieldID, message string) {
	c.d.FieldErrors = append(c.d.FieldErrors, FieldError{FieldID: fieldID, Message: message})
}

func (c *Collector) ClearFieldError(fieldID string) {
	c.d.ClearedFields = append(c.d.ClearedFields, fieldID)
}

func (c *Collector) RenderStep(index int) {
	step := index
	c.d.Step = &step
}

func (c *Collector) RenderQuote(quote domain.Quote) {
	q := quote
	c.d.Quote = &q
}

func (c *Collector) RenderAutocomplete(results []domain.LookupEntry) {
	c.d.Autocomplete = results
}

// Directives returns everything recorded so far.
func (c *Collector) Directives() Directives {
	return c.d
}

// Compile-time check.
var _ port.Renderer = (*Collector)(nil)
