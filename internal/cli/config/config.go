// Package config handles configuration for the CLI front end:
// defaults, optional JSON overlay, then command-line flags.
package config

// Config holds runtime settings for the notekeeper CLI.
type Config struct {
	DatabasePath string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
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
