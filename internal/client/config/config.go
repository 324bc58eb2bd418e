package config

import "time"

// Config holds runtime settings for the notas CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout applied by the transport.
//   - DatabaseDSN: sqlite DSN for the local session database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "notas.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), environment variables, and finally
// command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
