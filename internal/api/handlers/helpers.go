package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
)

// decodeStrict decodes exactly one JSON object from the request body,
// rejecting unknown fields and trailing content. On failure it writes
// the 400 response itself and returns false.
func decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "Requête JSON invalide")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "Requête JSON invalide")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// respondError maps a domain error to its HTTP status and user-facing
// message. Diagnostics (missing credential names, upstream bodies) stay
// in the server log; clients only ever see the generic French messages.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.AddressNotFoundError
		configErr     *domain.ConfigError
		upstreamErr   *domain.UpstreamError
		deliveryErr   *domain.DeliveryError
	)

	switch {
	case errors.As(err, &validationErr):
		writeError(w, r, http.StatusBadRequest, validationErr.Msg)

	case errors.As(err, &notFoundErr):
		msg := "Adresse de départ non trouvée"
		if notFoundErr.Field == "arrivee" {
			msg = "Adresse d'arrivée non trouvée"
		}
		writeError(w, r, http.StatusBadRequest, msg)

	case errors.Is(err, domain.ErrNoRoute):
		writeError(w, r, http.StatusBadRequest, "Itinéraire non trouvé")

	case errors.As(err, &configErr):
		log.Printf("configuration error: path=%s missing=%s", r.URL.Path, configErr.Missing)
		writeError(w, r, http.StatusInternalServerError, "Configuration serveur manquante")

	case errors.As(err, &upstreamErr):
		log.Printf("upstream failure: path=%s stage=%s err=%v", r.URL.Path, upstreamErr.Stage, upstreamErr.Err)
		writeError(w, r, http.StatusInternalServerError, "Erreur calcul itinéraire")

	case errors.As(err, &deliveryErr):
		log.Printf("delivery failure: path=%s status=%d body=%q", r.URL.Path, deliveryErr.Status, deliveryErr.Body)
		writeError(w, r, http.StatusInternalServerError, "Erreur notification")

	default:
		log.Printf("unhandled error: path=%s err=%v", r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "Erreur serveur")
	}
}

// requirePost rejects anything but POST. OPTIONS preflight never reaches
// handlers; the CORS middleware answers it.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}
