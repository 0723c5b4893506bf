package mocks

import (
	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
	"cotizador/internal/service"
)

// MockQuoteService is a mock implementation of service.QuoteService.
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Compute(input service.ComputeQuoteInput) (domain.Quote, error) {
	args := m.Called(input)
	return args.Get(0).(domain.Quote), args.Error(1)
}

func (m *MockQuoteService) Products() []service.ProductInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.ProductInfo)
}
