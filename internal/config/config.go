package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the CLI and the gateway.
type Config struct {
	Port    string `envconfig:"PORT" default:"4000"`
	API     APIConfig
	Logging LoggingConfig
	Metrics MetricsConfig
	CORS    CORSConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.API.normalize()
	cfg.CORS.normalize()
	// envconfig accepts a set-but-empty variable as present.
	if cfg.API.Key == "" {
		return Config{}, fmt.Errorf("load config: required key %s missing value", envAPIKey)
	}
	return cfg, nil
}
