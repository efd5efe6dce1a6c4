package main

import (
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/soniachared-a11y/taxi-malacrida/internal/adapters/ors"
	"github.com/soniachared-a11y/taxi-malacrida/internal/adapters/repositories"
	"github.com/soniachared-a11y/taxi-malacrida/internal/adapters/telegram"
	"github.com/soniachared-a11y/taxi-malacrida/internal/api"
	"github.com/soniachared-a11y/taxi-malacrida/internal/config"
	"github.com/soniachared-a11y/taxi-malacrida/internal/domain"
	"github.com/soniachared-a11y/taxi-malacrida/internal/platform/db"
	"github.com/soniachared-a11y/taxi-malacrida/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (ORS, Telegram, Postgres) behind ports and
// starts the HTTP server. A missing credential disables only the endpoint
// that needs it; the endpoint reports a configuration error at call time.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	var geocoder ports.Geocoder
	var directions ports.DirectionsProvider
	if cfg.ORSAPIKey != "" {
		client, err := ors.NewClient(cfg.ORSAPIKey, cfg.ORSBaseURL, cfg.GeocodeCountry)
		if err != nil {
			log.Fatal(err)
		}
		geocoder = client
		directions = client
	} else {
		log.Println("OPENROUTE_API_KEY not set: route quotes disabled")
	}

	var notifier ports.Notifier
	if cfg.TelegramBotToken != "" {
		client, err := telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.TelegramBaseURL)
		if err != nil {
			log.Fatal(err)
		}
		notifier = client
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set: booking notifications disabled")
	}

	var store ports.ReservationStore
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(conn); err != nil {
			log.Fatal(err)
		}
		store = repositories.NewPgReservationStore(conn)
	} else {
		log.Println("DATABASE_URL not set: reservation persistence disabled")
	}

	router := api.NewRouter(geocoder, directions, domain.DefaultTariff, notifier, store)

	// Write timeout leaves room for the sequential geocode/route chain
	// against the external API.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
