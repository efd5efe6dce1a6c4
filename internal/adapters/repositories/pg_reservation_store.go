package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/platform/obs"
)

// PgReservationStore persists confirmed bookings in Postgres.
// The store is insert-only: reservations are never updated or deleted
// by the service, the record itself is the source of truth for operators.
type PgReservationStore struct {
	DB *sql.DB
}

func NewPgReservationStore(db *sql.DB) *PgReservationStore {
	return &PgReservationStore{DB: db}
}

// InitSchema creates the reservations table when it does not exist yet.
// Safe to run on every startup.
func InitSchema(db *sql.DB) error {
	const q = `
	CREATE TABLE IF NOT EXISTS reservations (
		id          BIGSERIAL PRIMARY KEY,
		depart      TEXT NOT NULL,
		arrivee     TEXT NOT NULL,
		date_heure  TEXT NOT NULL,
		nom         TEXT NOT NULL,
		telephone   TEXT NOT NULL,
		email       TEXT NOT NULL,
		message     TEXT NOT NULL DEFAULT '',
		distance_km DOUBLE PRECISION,
		prix_euros  DOUBLE PRECISION,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create reservations table: %w", err)
	}

	return nil
}

// Insert stores the reservation and returns its assigned id.
func (s *PgReservationStore) Insert(ctx context.Context, r domain.Reservation) (_ int64, err error) {
	defer obs.Time(ctx, "reservations.insert")(&err)

	if s.DB == nil {
		return 0, errors.New("reservation store: db is nil")
	}

	const q = `
	INSERT INTO reservations
		(depart, arrivee, date_heure, nom, telephone, email, message, distance_km, prix_euros)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id;
	`

	var id int64
	err = s.DB.QueryRowContext(ctx, q,
		r.Depart, r.Arrivee, r.DateHeure, r.Nom, r.Telephone, r.Email,
		r.Message, r.DistanceKm, r.PrixEuros,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert reservation: %w", err)
	}

	return id, nil
}
