package domain

import "time"

// A confirmed booking as it is handed to the notification channel.
// Transient: built per request, rendered, transmitted, discarded.
// Message is the only optional field.
type BookingNotification struct {
	Nom       string
	Telephone string
	Depart    string
	Arrivee   string
	DateHeure string
	Prix      string
	Message   string
}

// A booking record as persisted in the reservations table.
// DistanceKm and PrixEuros are nil when the customer booked without
// requesting a quote first.
type Reservation struct {
	ID         int64
	Depart     string
	Arrivee    string
	DateHeure  string
	Nom        string
	Telephone  string
	Email      string
	Message    string
	DistanceKm *float64
	PrixEuros  *float64
	CreatedAt  time.Time
}
