package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
	"cotizador/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ListLeads(ctx context.Context, product domain.ProductCode, offset, limit int) ([]domain.Lead, int, error) {
	args := m.Called(ctx, product, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Lead), args.Int(1), args.Error(2)
}

func (m *MockReportService) ExportLeads(ctx context.Context, product domain.ProductCode, format service.ExportFormat) ([]byte, string, error) {
	args := m.Called(ctx, product, format)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
