package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cotizador/internal/domain"
	"cotizador/internal/service"
)

// MockJourneyService is a mock implementation of service.JourneyService.
type MockJourneyService struct {
	mock.Mock
}

func (m *MockJourneyService) Start(ctx context.Context, input service.StartJourneyInput) (*service.JourneyView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JourneyView), args.Error(1)
}

func (m *MockJourneyService) Get(ctx context.Context, id uuid.UUID) (*service.JourneyView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JourneyView), args.Error(1)
}

func (m *MockJourneyService) Advance(ctx context.Context, id uuid.UUID, fields domain.FormSnapshot) (*service.JourneyView, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JourneyView), args.Error(1)
}

func (m *MockJourneyService) Retreat(ctx context.Context, id uuid.UUID) (*service.JourneyView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JourneyView), args.Error(1)
}

func (m *MockJourneyService) Reset(ctx context.Context, id uuid.UUID) (*service.JourneyView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JourneyView), args.Error(1)
}
