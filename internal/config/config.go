// Package config collects every runtime setting read from the process
// environment so the rest of the code receives explicit values instead of
// reaching for os.Getenv.
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultSummaryTimeout bounds a single outbound generation call.
	// Completion latency on a self-hosted model is unbounded, so this is
	// deliberately generous.
	DefaultSummaryTimeout = 5 * time.Minute
	// DefaultModelName is the model requested from the generate endpoint.
	DefaultModelName = "llama3"
	// DefaultDailyQuota caps LLM-backed requests per day.
	DefaultDailyQuota = 500
)

// Config holds all settings for the server, the database, the summary
// generator, and the authentication gate.
type Config struct {
	Port string
	Env  string

	// DatabaseDSN is the PostgreSQL connection string.
	DatabaseDSN string

	// ModelBaseURL is the base URL of the external text-generation server
	// (e.g. http://localhost:11434). ModelName selects the model.
	ModelBaseURL   string
	ModelName      string
	SummaryTimeout time.Duration

	// Username/Password are the credentials for the basic auth gate.
	Username string
	Password string

	// AllowedOrigins is the extra comma-separated CORS origin list.
	AllowedOrigins string

	// SeedFile optionally points at a JSON file of books loaded into an
	// empty database at startup.
	SeedFile string

	// DailyQuota caps requests to the LLM-backed endpoints per day.
	DailyQuota int64
}

// Load reads the configuration from the environment, applying defaults for
// everything except the database DSN, credentials, and model base URL, which
// the operator must provide.
func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		Env:            getenv("ENV", "development"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		ModelBaseURL:   os.Getenv("MODEL_BASE_URL"),
		ModelName:      getenv("MODEL_NAME", DefaultModelName),
		SummaryTimeout: getduration("SUMMARY_TIMEOUT", DefaultSummaryTimeout),
		Username:       os.Getenv("API_USERNAME"),
		Password:       os.Getenv("API_PASSWORD"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		SeedFile:       os.Getenv("SEED_FILE"),
		DailyQuota:     getint64("DAILY_QUOTA", DefaultDailyQuota),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getint64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
