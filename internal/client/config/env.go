package config

import (
	"os"
	"time"
)

// Environment variables recognized by the client.
const (
	EnvAPIBaseURL     = "NOTAS_API_BASE_URL"
	EnvRequestTimeout = "NOTAS_REQUEST_TIMEOUT"
	EnvDatabaseDSN    = "NOTAS_DATABASE_DSN"
)

// parseEnv overlays cfg with values from the environment. Unset or empty
// variables change nothing; an unparsable timeout is ignored rather than
// fatal.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
}
