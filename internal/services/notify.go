package services

import (
	"context"
	"strings"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/ports"
)

// DispatchNotification validates a confirmed booking, renders the
// operator message and hands it to the notifier. Exactly one send is
// attempted; delivery is best-effort and never retried, a failed
// notification must not roll back the booking it announces.
func DispatchNotification(
	ctx context.Context,
	n domain.BookingNotification,
	notifier ports.Notifier,
) error {
	required := []string{n.Nom, n.Telephone, n.Depart, n.Arrivee, n.DateHeure, n.Prix}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return &domain.ValidationError{Msg: "Données manquantes"}
		}
	}

	if notifier == nil {
		return &domain.ConfigError{Missing: "TELEGRAM_BOT_TOKEN"}
	}

	return notifier.Send(ctx, RenderBookingMessage(n))
}

// RenderBookingMessage builds the operator-facing text for one booking.
// The optional customer message gets its own labelled line only when it
// is non-empty; the line is omitted entirely otherwise.
func RenderBookingMessage(n domain.BookingNotification) string {
	var b strings.Builder

	b.WriteString("🚗 NOUVELLE RÉSERVATION TAXI MALACRIDA\n\n")
	b.WriteString("👤 Client : " + n.Nom + "\n")
	b.WriteString("📞 Tél : " + n.Telephone + "\n\n")
	b.WriteString("📍 Départ : " + n.Depart + "\n")
	b.WriteString("📍 Arrivée : " + n.Arrivee + "\n")
	b.WriteString("🕐 Date/Heure : " + n.DateHeure + "\n\n")
	b.WriteString("💰 Prix estimé : " + n.Prix + "€\n")

	if msg := strings.TrimSpace(n.Message); msg != "" {
		b.WriteString("💬 Message : " + msg + "\n")
	}

	b.WriteString("\n✅ Réservation confirmée")

	return b.String()
}
