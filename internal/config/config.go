package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	BaseURL  string        // HELPDESK_URL (required unless a remote profile supplies it)
	Token    string        // HELPDESK_TOKEN (optional, overrides the stored session token)
	NATSURL  string        // HELPDESK_NATS_URL (optional, empty = no push relay)
	StateDir string        // HELPDESK_STATE_DIR (default ~/.local/state/helpdesk)
	Timeout  time.Duration // HELPDESK_HTTP_TIMEOUT (default 30s)
}

// Load builds the config from the environment. BaseURL may still be empty
// after Load; the caller fills it from the active remote profile and errors
// out only when neither source has one.
func Load() (*Config, error) {
	c := &Config{
		BaseURL:  os.Getenv("HELPDESK_URL"),
		Token:    os.Getenv("HELPDESK_TOKEN"),
		NATSURL:  os.Getenv("HELPDESK_NATS_URL"),
		StateDir: os.Getenv("HELPDESK_STATE_DIR"),
	}

	timeoutStr := envOrDefault("HELPDESK_HTTP_TIMEOUT", "30s")
	d, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("HELPDESK_HTTP_TIMEOUT: %w", err)
	}
	c.Timeout = d

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
