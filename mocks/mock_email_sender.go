package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendQuoteEmail(ctx context.Context, toEmail, toName string, quote domain.Quote) error {
	args := m.Called(ctx, toEmail, toName, quote)
	return args.Error(0)
}
