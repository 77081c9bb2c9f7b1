package config

// TelemetrySettings turns on OpenTelemetry tracing. Tracing is off when Endpoint is empty.
type TelemetrySettings struct {
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint" env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"`
}
