package port

import (
	"context"

	"cotizador/internal/domain"
)

// EmailSender defines the contract for sending quote confirmation emails.
type EmailSender interface {
	SendQuoteEmail(ctx context.Context, toEmail, toName string, quote domain.Quote) error
}
