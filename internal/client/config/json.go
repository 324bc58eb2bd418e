package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dcastano/notas-cli/internal/flagx"
)

// jsonConfig is a DTO used only for unmarshalling the optional config file.
// Timeout is expressed in seconds to keep the file format simple.
type jsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DatabaseDSN           string `json:"database_dsn"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag means no file and no changes. Fields absent from the
// file keep their earlier values. Panics on a broken file: a config the user
// explicitly pointed at must not be half-applied silently.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
