package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxivscraper/0.1"). arXiv asks harvesters to identify
	// themselves; a contact email is appended when configured.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// HarvestConfig holds settings for the harvest session.
type HarvestConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts per page when the
	// endpoint throttles (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RetryWait is the base wait before retrying a throttled request
	// when the endpoint sends no Retry-After header; it doubles on
	// each further attempt (default 30s).
	RetryWait time.Duration `json:"retry_wait" yaml:"retry_wait"`

	// Partial controls whether records accumulated before a fatal
	// error are returned to the caller. Default is to discard them.
	Partial bool `json:"partial" yaml:"partial"`
}
