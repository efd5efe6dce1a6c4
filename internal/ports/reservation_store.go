package ports

import (
	"context"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
)

// Port: insert-only persistence for confirmed bookings.
type ReservationStore interface {
	// Persist the reservation and return its assigned id.
	Insert(ctx context.Context, r domain.Reservation) (int64, error)
}
