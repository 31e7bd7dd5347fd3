package config

// TelemetryConfig controls metrics export settings. Counters are always
// kept in memory for the run summary; OTLP push activates only when an
// endpoint is configured.
type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ServiceName  string `mapstructure:"service_name"`
	OtlpEndpoint string `mapstructure:"otlp_endpoint"`
	OtlpInsecure bool   `mapstructure:"otlp_insecure"`
}
