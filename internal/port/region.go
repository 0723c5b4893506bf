package port

import (
	"context"

	"cotizador/internal/domain"
)

// RegionFetcher retrieves the two reference collections from the upstream
// region service. Authentication against the service is the implementation's
// concern; callers only consume "give me the two collections".
type RegionFetcher interface {
	FetchRegions(ctx context.Context) (departments, municipalities []domain.LookupEntry, err error)
}

// RegionDirectory answers synchronous region questions from loaded reference
// data. Implementations must fail closed: when no data is loaded, Ready
// returns false and every match reports no result.
type RegionDirectory interface {
	Ready() bool
	// MunicipalityInDepartment reports whether a municipality with the given
	// name (case-insensitive) exists and its parent department name matches.
	MunicipalityInDepartment(municipality, department string) bool
}
