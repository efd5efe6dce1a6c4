package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open returns a pooled Postgres connection verified with a ping.
// Pool sizing is modest: the reservation store issues one short insert
// per booking, nothing long-lived.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	return db, nil
}
