package lookup

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cotizador/internal/domain"
	"cotizador/internal/port"
)

// Cache memoizes the department/municipality reference data fetched once
// from the region service and serves synchronous queries against it. A
// failed load leaves the cache empty and every query degrades to "no
// matches"; region validation then fails closed instead of passing silently.
type Cache struct {
	fetcher port.RegionFetcher

	mu             sync.RWMutex
	loaded         bool
	departments    map[string]domain.LookupEntry
	municipalities []domain.LookupEntry
	muniByName     map[string][]domain.LookupEntry
}

// NewCache creates an empty, unloaded cache.
func NewCache(fetcher port.RegionFetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Load fetches both reference collections. It is one-shot and idempotent: a
// call while already loaded returns immediately without re-fetching. A fetch
// error is returned once and the cache stays empty; retry is a repeat call,
// typically a page reload.
func (c *Cache) Load(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	departments, municipalities, err := c.fetcher.FetchRegions(ctx)
	if err != nil {
		return fmt.Errorf("lookup.Load: %w", err)
	}

	deptByID := make(map[string]domain.LookupEntry, len(departments))
	for _, d := range departments {
		deptByID[d.ID] = d
	}
	byName := make(map[string][]domain.LookupEntry, len(municipalities))
	for _, m := range municipalities {
		key := strings.ToLower(m.Name)
		byName[key] = append(byName[key], m)
	}

	c.mu.Lock()
	if !c.loaded {
		c.departments = deptByID
		c.municipalities = municipalities
		c.muniByName = byName
		c.loaded = true
	}
	c.mu.Unlock()
	return nil
}

// Ready reports whether reference data has been loaded.
func (c *Cache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Filter returns every municipality matching the predicate. It operates on
// the in-memory cache only and never blocks on I/O.
func (c *Cache) Filter(predicate func(domain.LookupEntry) bool) []domain.LookupEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.LookupEntry
	for _, m := range c.municipalities {
		if predicate(m) {
			out = append(out, m)
		}
	}
	return out
}

// Search returns up to limit municipalities whose name contains the query,
// case-insensitively, formatted as "<municipality> - <department>" entries.
func (c *Cache) Search(query string, limit int) []domain.LookupEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.LookupEntry
	for _, m := range c.municipalities {
		if !strings.Contains(strings.ToLower(m.Name), q) {
			continue
		}
		parent := c.parentLocked(m)
		out = append(out, domain.LookupEntry{
			ID:       m.ID,
			ParentID: m.ParentID,
			Name:     m.DisplayName(parent),
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// ResolveParent returns the parent department of a subdivision, or nil when
// the reference does not resolve. Unresolvable parents degrade the display,
// they never fail validation on their own.
func (c *Cache) ResolveParent(entry domain.LookupEntry) *domain.LookupEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parentLocked(entry)
}

func (c *Cache) parentLocked(entry domain.LookupEntry) *domain.LookupEntry {
	if entry.ParentID == "" {
		return nil
	}
	parent, ok := c.departments[entry.ParentID]
	if !ok {
		return nil
	}
	return &parent
}

// MunicipalityInDepartment reports whether a municipality with the given
// name exists under a department with the given name, both compared
// case-insensitively. With no loaded data it always reports false.
func (c *Cache) MunicipalityInDepartment(municipality, department string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return false
	}
	dept := strings.ToLower(strings.TrimSpace(department))
	for _, m := range c.muniByName[strings.ToLower(strings.TrimSpace(municipality))] {
		parent := c.parentLocked(m)
		if parent != nil && strings.ToLower(parent.Name) == dept {
			return true
		}
	}
	return false
}

// Compile-time check.
var _ port.RegionDirectory = (*Cache)(nil)
