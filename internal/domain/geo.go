package domain

// Immutable geographic point in decimal degrees (latitude, longitude).
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Return the point as [lon, lat] for external API compatibility
// (OpenRouteService and GeoJSON use longitude-first axis order).
func (p GeoPoint) CoordsToList() []float64 { return []float64{p.Lon, p.Lat} }

// A driving route between two points as reported by a routing provider.
// Geometry is already normalized to (lat, lon) order by the adapter.
type Route struct {
	DistanceMeters float64
	Geometry       []GeoPoint
}
