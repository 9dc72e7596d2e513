package remote

import (
	"os"
	"time"
)

// DefaultBaseURL matches the development deployment of the service.
const DefaultBaseURL = "http://localhost:8000/api"

// DefaultTimeout bounds each call; the service itself models no timeout,
// so a hung call would otherwise park the orchestrator indefinitely.
const DefaultTimeout = 30 * time.Second

// Config holds client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ConfigFromEnv reads CAREERLENS_API_URL and CAREERLENS_API_TIMEOUT,
// falling back to defaults.
func ConfigFromEnv() Config {
	cfg := Config{BaseURL: DefaultBaseURL, Timeout: DefaultTimeout}
	if v := os.Getenv("CAREERLENS_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CAREERLENS_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}
