package ports

import (
	"context"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the best candidate for the address, or domain.ErrNoMatch
	// when the provider has no candidate at all.
	Geocode(ctx context.Context, address string) (domain.GeoPoint, error)
}
