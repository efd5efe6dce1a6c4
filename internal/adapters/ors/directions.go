package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route requests a driving route between two points from the ORS
// directions endpoint. The provider reports distance in meters and
// geometry in (lon, lat) order; geometry is flipped to (lat, lon)
// before being handed to callers.
func (c *Client) Route(ctx context.Context, depart, arrivee domain.GeoPoint) (_ domain.Route, err error) {
	defer obs.Time(ctx, "ors.directions")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s", c.baseURL, c.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{depart.CoordsToList(), arrivee.CoordsToList()},
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("marshal directions request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.Route{}, fmt.Errorf("directions request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.Route{}, fmt.Errorf("execute directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Route{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return domain.Route{}, domain.ErrNoRoute
	}

	best := decoded.Routes[0]

	geometry := make([]domain.GeoPoint, 0, len(best.Geometry.Coordinates))
	for _, pair := range best.Geometry.Coordinates {
		if len(pair) < 2 {
			return domain.Route{}, fmt.Errorf("invalid geometry point in directions response")
		}
		geometry = append(geometry, domain.GeoPoint{Lon: pair[0], Lat: pair[1]})
	}

	return domain.Route{
		DistanceMeters: best.Summary.Distance,
		Geometry:       geometry,
	}, nil
}
