package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
)

// MockRegionFetcher is a mock implementation of port.RegionFetcher.
type MockRegionFetcher struct {
	mock.Mock
}

func (m *MockRegionFetcher) FetchRegions(ctx context.Context) ([]domain.LookupEntry, []domain.LookupEntry, error) {
	args := m.Called(ctx)
	var departments, municipalities []domain.LookupEntry
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.LookupEntry)
	}
	if args.Get(1) != nil {
		municipalities = args.Get(1).([]domain.LookupEntry)
	}
	return departments, municipalities, args.Error(2)
}

// MockRegionDirectory is a mock implementation of port.RegionDirectory.
type MockRegionDirectory struct {
	mock.Mock
}

func (m *MockRegionDirectory) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockRegionDirectory) MunicipalityInDepartment(municipality, department string) bool {
	args := m.Called(municipality, department)
	return args.Bool(0)
}
