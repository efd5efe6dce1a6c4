package dto

type ReservationRequest struct {
	Depart     string   `json:"depart"`
	Arrivee    string   `json:"arrivee"`
	DateHeure  string   `json:"date_heure"`
	Nom        string   `json:"nom"`
	Telephone  string   `json:"telephone"`
	Email      string   `json:"email"`
	Message    string   `json:"message,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	PrixEuros  *float64 `json:"prix_euros,omitempty"`
}

type ReservationResponse struct {
	ID int64 `json:"id"`
}
