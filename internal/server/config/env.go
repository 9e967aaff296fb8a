package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g., ":3000")
//	DATABASE_URL    PostgreSQL DSN
//	JWT_SECRET      HMAC secret for signing session tokens
//	TOKEN_VALIDITY  session token lifetime, Go duration string (e.g., "24h")
//
// Unset variables leave the current values untouched. An unparsable
// TOKEN_VALIDITY is ignored rather than fatal; Validate catches a
// non-positive result later.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
