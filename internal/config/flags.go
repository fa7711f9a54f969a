package config

import (
	"flag"
	"os"

	"github.com/mkravets/appstate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path/DSN of the local database (default from Config)
//	-l string   log level: debug, info, warn, error (default from Config)
//
// os.Args is filtered through flagx.FilterArgs so the -c/-config flags
// handled by the JSON stage do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
