package config

import (
	"strings"
	"time"
)

// maxRetryLimit caps GET retries so a misconfigured environment cannot turn
// the client into a retry storm.
const maxRetryLimit = 5

// APIConfig contains remote Holidaze API configuration.
type APIConfig struct {
	// BaseURL is the API host, without a trailing slash.
	BaseURL string `env:"HOLIDAZE_API_BASE_URL" envDefault:"https://v2.api.noroff.dev"`

	// Key is sent as the X-Noroff-API-Key header. Optional; some
	// deployments require it.
	Key string `env:"HOLIDAZE_API_KEY"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `env:"HOLIDAZE_HTTP_TIMEOUT" envDefault:"10s"`

	// RetryLimit is the number of retries for idempotent GET requests.
	RetryLimit int `env:"HOLIDAZE_HTTP_RETRY_LIMIT" envDefault:"0"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	a.Key = strings.TrimSpace(a.Key)

	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
	if a.RetryLimit < 0 {
		a.RetryLimit = 0
	}
	if a.RetryLimit > maxRetryLimit {
		a.RetryLimit = maxRetryLimit
	}
}
