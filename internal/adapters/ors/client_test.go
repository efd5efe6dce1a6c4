package ors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", srv.URL, "FR")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("", "", "FR"); err == nil {
		t.Fatal("expected error for empty api key")
	}
	if _, err := NewClient("   ", "", "FR"); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

func TestGeocodeSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q", got)
		}

		q := r.URL.Query()
		if q.Get("text") != "10 Rue Example, Aix-en-Provence" {
			t.Errorf("text = %q", q.Get("text"))
		}
		if q.Get("boundary.country") != "FR" {
			t.Errorf("boundary.country = %q", q.Get("boundary.country"))
		}
		if q.Get("size") != "1" {
			t.Errorf("size = %q", q.Get("size"))
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"features": []map[string]any{
				{"geometry": map[string]any{"coordinates": []float64{5.4474, 43.5297}}},
			},
		})
	})

	// Extra whitespace collapses before the query is built.
	point, err := client.Geocode(context.Background(), "  10 Rue Example,   Aix-en-Provence ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Provider answers (lon, lat); the client flips to (lat, lon).
	if point.Lat != 43.5297 || point.Lon != 5.4474 {
		t.Fatalf("point = %+v, want lat=43.5297 lon=5.4474", point)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"features": []any{}})
	})

	_, err := client.Geocode(context.Background(), "nowhere at all")
	if !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("error = %v, want ErrNoMatch", err)
	}
}

func TestGeocodeHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	_, err := client.Geocode(context.Background(), "somewhere")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("provider failure misreported as no match: %v", err)
	}
}

func TestRouteSuccess(t *testing.T) {
	depart := domain.GeoPoint{Lat: 43.5297, Lon: 5.4474}
	arrivee := domain.GeoPoint{Lat: 43.4393, Lon: 5.2214}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/directions/driving-car" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}

		var req struct {
			Coordinates [][]float64 `json:"coordinates"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		want := [][]float64{{5.4474, 43.5297}, {5.2214, 43.4393}}
		if len(req.Coordinates) != 2 ||
			req.Coordinates[0][0] != want[0][0] || req.Coordinates[0][1] != want[0][1] ||
			req.Coordinates[1][0] != want[1][0] || req.Coordinates[1][1] != want[1][1] {
			t.Errorf("coordinates = %v, want %v (lon-first)", req.Coordinates, want)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"routes": []map[string]any{
				{
					"summary": map[string]any{"distance": 28400.0, "duration": 1680.0},
					"geometry": map[string]any{
						"coordinates": [][]float64{{5.4474, 43.5297}, {5.33, 43.48}, {5.2214, 43.4393}},
					},
				},
			},
		})
	})

	route, err := client.Route(context.Background(), depart, arrivee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if route.DistanceMeters != 28400 {
		t.Fatalf("distance = %v, want 28400", route.DistanceMeters)
	}
	if len(route.Geometry) != 3 {
		t.Fatalf("geometry length = %d, want 3", len(route.Geometry))
	}
	// Geometry is normalized to (lat, lon).
	if route.Geometry[1].Lat != 43.48 || route.Geometry[1].Lon != 5.33 {
		t.Fatalf("geometry[1] = %+v, want lat=43.48 lon=5.33", route.Geometry[1])
	}
}

func TestRouteNoRoute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"routes": []any{}})
	})

	_, err := client.Route(context.Background(), domain.GeoPoint{}, domain.GeoPoint{Lat: 1, Lon: 1})
	if !errors.Is(err, domain.ErrNoRoute) {
		t.Fatalf("error = %v, want ErrNoRoute", err)
	}
}

func TestRouteHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := client.Route(context.Background(), domain.GeoPoint{}, domain.GeoPoint{Lat: 1, Lon: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrNoRoute) {
		t.Fatalf("provider failure misreported as no route: %v", err)
	}
}
