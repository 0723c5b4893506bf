package noop

import (
	"context"
	"log"

	"cotizador/internal/domain"
	"cotizador/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs quotes to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendQuoteEmail(_ context.Context, toEmail, toName string, quote domain.Quote) error {
	log.Printf("[NOOP EMAIL] Quote for %s (%s): product=%s total=%d priced=%t",
		toName, toEmail, quote.Product, quote.Total, quote.Priced)
	return nil
}
