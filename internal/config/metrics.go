package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `envconfig:"METRICS_ENABLED" default:"false"`
	Port         string `envconfig:"METRICS_PORT" default:"9090"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"football-api"`
	OtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
}
