package domain

// Represents a priced, mappable route between two resolved addresses.
// A RouteQuote is the output of the quote computation and is immutable
// once built; it carries no identity beyond the request that produced it.
type RouteQuote struct {
	DistanceKm float64
	PriceEuros float64
	Polyline   []GeoPoint
	Depart     GeoPoint
	Arrivee    GeoPoint
}
