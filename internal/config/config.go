// Package config holds runtime settings for the appstate demo binary and
// loads them from defaults, an optional JSON file, and command-line flags,
// in that order of precedence.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: SQLite DSN (or file path) for the local key-value store.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "appstate.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
