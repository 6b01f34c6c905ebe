package config

import "time"

// Config holds runtime settings for the league CLI.
type Config struct {
	// APIBaseURL is the base URL of the platform REST API.
	APIBaseURL string
	// DatabasePath is the sqlite file holding the durable session.
	DatabasePath string
	// RequestTimeout bounds every API request.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000/api"
	c.DatabasePath = "ligacli.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
