package config

import (
	"strings"
	"time"
)

// APIConfig controls how the client reaches the Football-API.
type APIConfig struct {
	Key     string        `envconfig:"FOOTBALL_API_KEY" required:"true"`
	BaseURL string        `envconfig:"FOOTBALL_API_BASE_URL"`
	Timeout time.Duration `envconfig:"FOOTBALL_API_TIMEOUT" default:"10s"`
}

func (c *APIConfig) normalize() {
	c.Key = strings.TrimSpace(c.Key)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.Timeout <= 0 {
		c.Timeout = defaultAPITimeout
	}
}
