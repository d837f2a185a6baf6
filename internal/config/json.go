package config

import (
	"encoding/json"
	"os"

	"github.com/bloodlink/admincli/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling; absent fields
// keep their prior value.
type jsonConfig struct {
	APIBaseURL *string `json:"api_base_url"`
	StateDir   *string `json:"state_dir"`
	PageSize   *int    `json:"page_size"`
	LogLevel   *string `json:"log_level"`
}

// parseJSON overlays Config with values from the JSON file named by -c or
// -config. No flag, no file, nothing happens. Read or unmarshal errors panic:
// a config file that exists but cannot be used is a startup defect, not a
// condition to limp past.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StateDir != nil {
		cfg.StateDir = *jc.StateDir
	}
	if jc.PageSize != nil && *jc.PageSize > 0 {
		cfg.PageSize = *jc.PageSize
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
