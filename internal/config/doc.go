// Package config manages configuration for the Sahyog CLI.
//
// Configuration is loaded from environment variables and validated once
// at startup:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Environment Variables
//
//	SAHYOG_API_URL      - backend base URL (default: http://localhost:8080)
//	SAHYOG_API_TIMEOUT  - per-request timeout (default: 30s)
//	SAHYOG_TOKEN_PATH   - session token file override
//	SAHYOG_RATE_LIMIT   - client-side requests/second cap (0 = off)
//	SAHYOG_RATE_BURST   - burst size for the rate limiter
//	SAHYOG_METRICS      - enable prometheus client metrics
package config
