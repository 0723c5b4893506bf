package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cotizador/internal/domain"
	"cotizador/internal/lookup"
	"cotizador/internal/service"
	"cotizador/mocks"
)

func TestRegionSearch_LazyLoadThenServe(t *testing.T) {
	fetcher := new(mocks.MockRegionFetcher)
	fetcher.On("FetchRegions", mock.Anything).Return(
		[]domain.LookupEntry{{ID: "05", Name: "Antioquia"}},
		[]domain.LookupEntry{{ID: "05001", ParentID: "05", Name: "Medellín"}},
		nil,
	).Once()

	svc := service.NewRegionService(lookup.NewCache(fetcher))

	results := svc.Search(context.Background(), "mede", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Medellín - Antioquia", results[0].Name)

	// Second search serves from the cache without another fetch.
	svc.Search(context.Background(), "mede", 10)
	fetcher.AssertExpectations(t)
}

func TestRegionSearch_DegradesWhenUpstreamDown(t *testing.T) {
	fetcher := new(mocks.MockRegionFetcher)
	fetcher.On("FetchRegions", mock.Anything).Return(nil, nil, errors.New("timeout"))

	svc := service.NewRegionService(lookup.NewCache(fetcher))

	assert.Empty(t, svc.Search(context.Background(), "mede", 10),
		"a failed load degrades to no matches")
}
