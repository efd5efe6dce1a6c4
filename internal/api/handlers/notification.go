package handlers

import (
	"net/http"

	"github.com/soniachared-a11y/taxi-malacrida/internal/api/dto"
	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/ports"
	"github.com/soniachared-a11y/taxi-malacrida/internal/services"
)

// NotificationHandler forwards a confirmed booking to the operator chat.
// Notifier may be nil when the bot credential is absent.
type NotificationHandler struct {
	Notifier ports.Notifier
}

// Send handles POST /send-notification.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.NotificationRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	booking := domain.BookingNotification{
		Nom:       req.Nom,
		Telephone: req.Telephone,
		Depart:    req.Depart,
		Arrivee:   req.Arrivee,
		DateHeure: req.DateHeure,
		Prix:      req.Prix,
		Message:   req.Message,
	}

	if err := services.DispatchNotification(r.Context(), booking, h.Notifier); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NotificationResponse{Success: true})
}
