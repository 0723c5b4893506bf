package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
)

// MockRegionService is a mock implementation of service.RegionService.
type MockRegionService struct {
	mock.Mock
}

func (m *MockRegionService) Search(ctx context.Context, query string, limit int) []domain.LookupEntry {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.LookupEntry)
}
