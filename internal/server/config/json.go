package config

import (
	"encoding/json"
	"os"

	"notekeeper/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Empty fields leave the
// current value untouched so the file can override selectively.
type JsonConfig struct {
	Addr         string `json:"addr"`
	DatabasePath string `json:"database_path"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flag, if any. An unreadable or invalid file panics: a config
// file that was explicitly requested must not be silently ignored.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
}
