package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/soniachared-a11y/taxi-malacrida/internal/api/dto"
	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/ports"
)

// ReservationHandler persists confirmed bookings. Store may be nil when
// no database is configured; persistence then degrades to a
// configuration error instead of taking the whole site down.
type ReservationHandler struct {
	Store ports.ReservationStore
}

// Create handles POST /reservations.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.ReservationRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	required := []string{req.Depart, req.Arrivee, req.DateHeure, req.Nom, req.Telephone, req.Email}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			writeError(w, r, http.StatusBadRequest, "Données manquantes")
			return
		}
	}

	if h.Store == nil {
		respondError(w, r, &domain.ConfigError{Missing: "DATABASE_URL"})
		return
	}

	id, err := h.Store.Insert(r.Context(), domain.Reservation{
		Depart:     req.Depart,
		Arrivee:    req.Arrivee,
		DateHeure:  req.DateHeure,
		Nom:        req.Nom,
		Telephone:  req.Telephone,
		Email:      req.Email,
		Message:    req.Message,
		DistanceKm: req.DistanceKm,
		PrixEuros:  req.PrixEuros,
	})
	if err != nil {
		log.Printf("insert reservation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Erreur serveur")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ReservationResponse{ID: id})
}
