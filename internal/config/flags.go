package config

import (
	"flag"
	"os"

	"github.com/bloodlink/admincli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-s string   state directory
//	-p int      rows per list page
//
// Args are filtered to just these flags so the config-file flags handled
// elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.StateDir, "s", cfg.StateDir, "state directory")
	pageSize := fs.Int("p", cfg.PageSize, "rows per list page")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *pageSize > 0 {
		cfg.PageSize = *pageSize
	}
}
