package config

import "os"

// Config holds everything the server reads from the environment, loaded
// once at startup and injected explicitly. Missing credentials do not
// abort startup: the endpoint that needs them degrades to a
// configuration error so the rest of the site keeps working.
type Config struct {
	Port string

	// OpenRouteService geocoding/directions.
	ORSAPIKey  string
	ORSBaseURL string
	// Country constraint for geocoding, ISO 3166-1 alpha-2.
	GeocodeCountry string

	// Telegram operator notifications.
	TelegramBotToken string
	TelegramChatID   string
	TelegramBaseURL  string

	// Postgres reservation store. Empty disables persistence.
	DatabaseURL string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		ORSAPIKey:        os.Getenv("OPENROUTE_API_KEY"),
		ORSBaseURL:       os.Getenv("ORS_BASE_URL"),
		GeocodeCountry:   getEnv("GEOCODE_COUNTRY", "FR"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", "8582216343"),
		TelegramBaseURL:  os.Getenv("TELEGRAM_BASE_URL"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
