package config

import (
	"flag"
	"os"

	"notekeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite database file
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "path to SQLite database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
