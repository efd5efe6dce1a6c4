package dto

type NotificationRequest struct {
	Nom       string `json:"nom"`
	Telephone string `json:"telephone"`
	Depart    string `json:"depart"`
	Arrivee   string `json:"arrivee"`
	DateHeure string `json:"date_heure"`
	Prix      string `json:"prix"`
	Message   string `json:"message,omitempty"`
}

type NotificationResponse struct {
	Success bool `json:"success"`
}
