package ports

import (
	"context"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
)

// Contract for retrieving a driving route between two resolved points.
type DirectionsProvider interface {
	// Return the route from depart to arrivee, or domain.ErrNoRoute when
	// the provider reports no drivable path between them.
	Route(ctx context.Context, depart, arrivee domain.GeoPoint) (domain.Route, error)
}
