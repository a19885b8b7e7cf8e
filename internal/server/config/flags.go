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
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   path to the SQLite database file
//
// Args are filtered through flagx.FilterArgs first so the -c/-config flags
// handled by the JSON loader do not collide here.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "path to SQLite database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
