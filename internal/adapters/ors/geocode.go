package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves an address using OpenRouteService (/geocode/search),
// constrained to the client's country. Zero candidates map to
// domain.ErrNoMatch so callers can tell "bad address" from "bad call".
func (c *Client) Geocode(ctx context.Context, address string) (_ domain.GeoPoint, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	endpoint := c.baseURL + "/geocode/search"

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("text", normalize(address))
	q.Set("boundary.country", c.country)
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.GeoPoint{}, fmt.Errorf("geocode %q: %w", address, domain.ErrNoMatch)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.GeoPoint{}, fmt.Errorf("invalid coordinate format for %q", address)
	}

	// ORS returns (lon, lat).
	return domain.GeoPoint{Lon: coords[0], Lat: coords[1]}, nil
}
