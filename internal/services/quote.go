package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/ports"
)

// ComputeQuote converts two free-text addresses into a priced, mappable
// route: geocode both addresses, route between the resolved points, then
// apply the tariff to the route distance.
//
// The operation is all-or-nothing; no partial quote is ever returned.
// The two geocode lookups are independent and run concurrently; the
// routing call waits for both. Failures are classified per stage so the
// handler can map each to a distinct user-facing message, and nothing is
// retried here.
func ComputeQuote(
	ctx context.Context,
	depart string,
	arrivee string,
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	tariff domain.Tariff,
) (domain.RouteQuote, error) {
	depart = strings.TrimSpace(depart)
	arrivee = strings.TrimSpace(arrivee)

	if depart == "" || arrivee == "" {
		return domain.RouteQuote{}, &domain.ValidationError{Msg: "Départ et arrivée requis"}
	}

	if geocoder == nil || directions == nil {
		return domain.RouteQuote{}, &domain.ConfigError{Missing: "OPENROUTE_API_KEY"}
	}

	var (
		departPoint, arriveePoint domain.GeoPoint
		departErr, arriveeErr     error
	)

	// Plain group, no shared cancellation: both lookups run to
	// completion even if one fails.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		departPoint, err = geocoder.Geocode(ctx, depart)
		departErr = classifyGeocode(err, "depart")
		return departErr
	})
	g.Go(func() error {
		var err error
		arriveePoint, err = geocoder.Geocode(ctx, arrivee)
		arriveeErr = classifyGeocode(err, "arrivee")
		return arriveeErr
	})
	if err := g.Wait(); err != nil {
		// Wait reports whichever lookup failed first; pick the
		// departure error when both failed so the taxonomy matches the
		// sequential depart-then-arrivee flow.
		if departErr != nil {
			return domain.RouteQuote{}, departErr
		}
		return domain.RouteQuote{}, arriveeErr
	}

	route, err := directions.Route(ctx, departPoint, arriveePoint)
	if err != nil {
		if errors.Is(err, domain.ErrNoRoute) {
			return domain.RouteQuote{}, domain.ErrNoRoute
		}
		return domain.RouteQuote{}, &domain.UpstreamError{Stage: "route", Err: err}
	}

	distanceKm := domain.Round2(route.DistanceMeters / 1000)

	return domain.RouteQuote{
		DistanceKm: distanceKm,
		PriceEuros: tariff.Price(distanceKm),
		Polyline:   route.Geometry,
		Depart:     departPoint,
		Arrivee:    arriveePoint,
	}, nil
}

func classifyGeocode(err error, field string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNoMatch) {
		return &domain.AddressNotFoundError{Field: field}
	}
	return &domain.UpstreamError{Stage: "geocode", Err: err}
}
