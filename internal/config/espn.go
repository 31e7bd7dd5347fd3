package config

// ESPNConfig controls how we talk to the public ESPN scoreboard API.
type ESPNConfig struct {
	BaseURL string   `mapstructure:"base_url"`
	Timeout Duration `mapstructure:"timeout"`
}
