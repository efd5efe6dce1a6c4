package handlers

import (
	"net/http"

	"github.com/soniachared-a11y/taxi-malacrida/internal/api/dto"
	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/ports"
	"github.com/soniachared-a11y/taxi-malacrida/internal/services"
)

// RouteHandler turns two free-text addresses into a priced route.
// Geocoder or Directions may be nil when the ORS credential is absent;
// the quote service reports that as a configuration error.
type RouteHandler struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Tariff     domain.Tariff
}

// Calculate handles POST /calculate-route.
func (h *RouteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.RouteRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	quote, err := services.ComputeQuote(r.Context(), req.Depart, req.Arrivee, h.Geocoder, h.Directions, h.Tariff)
	if err != nil {
		respondError(w, r, err)
		return
	}

	coords := make([][2]float64, 0, len(quote.Polyline))
	for _, p := range quote.Polyline {
		coords = append(coords, [2]float64{p.Lat, p.Lon})
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		DistanceKm:       quote.DistanceKm,
		PrixEuros:        quote.PriceEuros,
		RouteCoordinates: coords,
		DepartCoords:     [2]float64{quote.Depart.Lat, quote.Depart.Lon},
		ArriveeCoords:    [2]float64{quote.Arrivee.Lat, quote.Arrivee.Lon},
	})
}
