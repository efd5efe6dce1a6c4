package api

import (
	"net/http"

	"github.com/soniachared-a11y/taxi-malacrida/internal/api/handlers"
	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// Any dependency may be nil when its credential is not configured; the
// owning endpoint then reports a configuration error at call time.
func NewRouter(
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	tariff domain.Tariff,
	notifier ports.Notifier,
	store ports.ReservationStore,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Geocoder:   geocoder,
		Directions: directions,
		Tariff:     tariff,
	}
	notificationHandler := &handlers.NotificationHandler{Notifier: notifier}
	reservationHandler := &handlers.ReservationHandler{Store: store}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/calculate-route", routeHandler.Calculate)
	mux.HandleFunc("/send-notification", notificationHandler.Send)
	mux.HandleFunc("/reservations", reservationHandler.Create)

	// Request id first so both the access log and per-op timings carry it.
	return requestIDMiddleware(loggingMiddleware(corsMiddleware(mux)))
}
