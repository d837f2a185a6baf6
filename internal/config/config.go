// Package config assembles runtime settings for the admin client.
//
// Sources are layered, later ones overriding earlier: built-in defaults, a
// .env file / environment variables, an optional JSON file (-c/-config), and
// command-line flags.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings.
//
// Fields:
//   - APIBaseURL: base URL of the membership backend, no trailing slash.
//   - StateDir: directory for the token database and the log file.
//   - PageSize: rows per page on list screens.
//   - LogLevel: "info" or "debug".
type Config struct {
	APIBaseURL string
	StateDir   string
	PageSize   int
	LogLevel   string
}

// LoadDefaults populates c with sensible defaults. The backend default is
// the development server address.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:7700"
	c.StateDir = defaultStateDir()
	c.PageSize = 10
	c.LogLevel = "info"
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".bloodlink-admin"
	}
	return filepath.Join(base, "bloodlink-admin")
}

// Load constructs a Config, applies defaults, then overlays environment,
// JSON file, and flags, in that order.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
