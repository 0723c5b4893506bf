package service

import (
	"context"
	"log"

	"cotizador/internal/domain"
	"cotizador/internal/lookup"
)

// RegionService serves autocomplete queries over the region lookup cache.
type RegionService interface {
	Search(ctx context.Context, query string, limit int) []domain.LookupEntry
}

type regionService struct {
	cache *lookup.Cache
}

// NewRegionService creates a new RegionService implementation.
func NewRegionService(cache *lookup.Cache) RegionService {
	return &regionService{cache: cache}
}

// Search lazily triggers the one-shot load and filters the cache. A failed
// load degrades to no matches; the next search retries the load, so a
// transient upstream failure heals on a later keystroke or page reload.
func (s *regionService) Search(ctx context.Context, query string, limit int) []domain.LookupEntry {
	if !s.cache.Ready() {
		if err := s.cache.Load(ctx); err != nil {
			log.Printf("region lookup load failed: %v", err)
			return nil
		}
	}
	return s.cache.Search(query, limit)
}
