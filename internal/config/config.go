// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer sources.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"time"
)

// Default fetch timeout for the roster document.
const defaultFetchTimeout = 10 * time.Second

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataURL locates the roster JSON document fetched once at startup.
	DataURL string `koanf:"data_url"`

	// FetchTimeoutMS bounds the startup roster fetch in milliseconds.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// HeadshotDir is the local directory served under /headshots/.
	// Empty disables headshot serving.
	HeadshotDir string `koanf:"headshot_dir"`

	// SiteTitle is the heading rendered on the roster page.
	SiteTitle string `koanf:"site_title"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8080",
		DataURL:        "http://localhost:8080/assets/data/candidates.json",
		FetchTimeoutMS: int(defaultFetchTimeout / time.Millisecond),
		HeadshotDir:    "",
		SiteTitle:      "Election Candidates",
	}
}

// FetchTimeout returns the configured fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}
