package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a .env file
// from the working directory first when one exists. A missing .env is not an
// error.
//
// Recognized variables:
//
//	BLOODLINK_API_URL    backend base URL
//	BLOODLINK_STATE_DIR  state directory
//	BLOODLINK_PAGE_SIZE  rows per list page
//	LOG_LEVEL            "debug" for verbose logging
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BLOODLINK_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("BLOODLINK_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("BLOODLINK_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
