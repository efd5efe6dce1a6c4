package dto

// Field names follow the public site contract (French keys).
type RouteRequest struct {
	Depart  string `json:"depart"`
	Arrivee string `json:"arrivee"`
}

// Coordinates are (lat, lon) pairs, ready for map display.
type RouteResponse struct {
	DistanceKm       float64      `json:"distance_km"`
	PrixEuros        float64      `json:"prix_euros"`
	RouteCoordinates [][2]float64 `json:"route_coordinates"`
	DepartCoords     [2]float64   `json:"depart_coords"`
	ArriveeCoords    [2]float64   `json:"arrivee_coords"`
}
