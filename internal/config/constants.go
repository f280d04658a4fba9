package config

import "time"

const (
	envPort         = "PORT"
	envAPIKey       = "FOOTBALL_API_KEY"
	envAPIBaseURL   = "FOOTBALL_API_BASE_URL"
	envAPITimeout   = "FOOTBALL_API_TIMEOUT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"

	defaultPort        = "4000"
	defaultAPITimeout  = 10 * time.Second
	defaultMetricsPort = "9090"
	defaultServiceName = "football-api"
)
