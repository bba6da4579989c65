package config

import "time"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds runtime settings for the novel reader CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - Environment: development or production; gates verbose request logging.
//   - RequestTimeout: per-request deadline for API calls.
type Config struct {
	APIBaseURL     string
	Environment    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:4000/api"
	c.Environment = EnvDevelopment
	c.RequestTimeout = 30 * time.Second
}

// IsDevelopment reports whether the client runs with development verbosity.
func (c *Config) IsDevelopment() bool {
	return c.Environment != EnvProduction
}

// IsProduction reports whether the client runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
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
