package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - api.go: remote API configuration
//   - session.go: session persistence and refresh configuration
type AppConfig struct {
	// IsDev enables verbose diagnostics. Set DEV=true for development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Remote API configuration
	API APIConfig

	// Session persistence configuration
	Session SessionConfig `envPrefix:"SESSION_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables. Invalid values are clamped, not rejected.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()
}
