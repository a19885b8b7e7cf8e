// Package config handles configuration for the server component:
// defaults, optional JSON overlay, then command-line flags.
package config

// Config holds runtime settings for the notekeeper server.
//
// Fields:
//   - Addr: bind address for the HTTP API.
//   - DatabasePath: path to the SQLite database file.
type Config struct {
	Addr         string
	DatabasePath string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "notes.db"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
