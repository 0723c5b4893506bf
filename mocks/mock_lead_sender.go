package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
)

// MockLeadSender is a mock implementation of port.LeadSender.
type MockLeadSender struct {
	mock.Mock
}

func (m *MockLeadSender) SendLead(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}
