// Package config loads runtime configuration for the notas CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (NOTAS_API_BASE_URL, NOTAS_REQUEST_TIMEOUT,
//     NOTAS_DATABASE_DSN).
//  4. Command-line flags (-a, -t, -d), which override everything else.
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:3000/api",
//	  "request_timeout_seconds": 10,
//	  "database_dsn": "notas.db"
//	}
package config
