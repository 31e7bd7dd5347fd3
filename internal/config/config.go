package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"matchday-graphics/internal/domain"
)

// Config holds runtime configuration for a generator run.
type Config struct {
	// Source selects the schedule provider: "espn" or "fixture".
	Source string `mapstructure:"source"`
	// GameDelay is the pause between per-game render attempts.
	GameDelay Duration `mapstructure:"game_delay"`
	// LeagueFilter narrows Leagues to the named slugs when non-empty.
	LeagueFilter []string        `mapstructure:"league_filter"`
	Leagues      []domain.League `mapstructure:"leagues"`
	ESPN         ESPNConfig      `mapstructure:"espn"`
	Render       RenderConfig    `mapstructure:"render"`
	Output       OutputConfig    `mapstructure:"output"`
	Telemetry    TelemetryConfig `mapstructure:"telemetry"`
	Log          LogConfig       `mapstructure:"log"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ActiveLeagues returns the configured leagues narrowed by LeagueFilter.
func (c Config) ActiveLeagues() []domain.League {
	if len(c.LeagueFilter) == 0 {
		return c.Leagues
	}

	wanted := make(map[string]bool, len(c.LeagueFilter))
	for _, slug := range c.LeagueFilter {
		wanted[strings.ToLower(strings.TrimSpace(slug))] = true
	}

	var active []domain.League
	for _, league := range c.Leagues {
		if wanted[strings.ToLower(league.Slug)] {
			active = append(active, league)
		}
	}
	return active
}

// Load reads configuration from an optional YAML file plus environment
// variables. Env keys use the MATCHDAY_ prefix with underscores for nesting,
// e.g. MATCHDAY_OUTPUT_BASE_DIR overrides output.base_dir.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, Config{})

	explicit := os.Getenv(envConfigFile)
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", explicit, err)
		}
	} else {
		v.AddConfigPath(defaultConfigDir)
		v.AddConfigPath(".")
		v.SetConfigName(defaultConfigName)
		v.SetConfigType(defaultConfigType)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))

	var cfg Config
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	normalize(&cfg)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source", defaultSource)
	v.SetDefault("game_delay", defaultGameDelay)
	v.SetDefault("espn.base_url", defaultESPNBaseURL)
	v.SetDefault("espn.timeout", defaultESPNTimeout)
	v.SetDefault("render.engine", defaultRenderEngine)
	v.SetDefault("render.canvas_size", defaultCanvasSize)
	v.SetDefault("render.logo_size", defaultLogoSize)
	v.SetDefault("render.fuzz_percent", defaultFuzzPercent)
	v.SetDefault("render.blur_sigma", defaultBlurSigma)
	v.SetDefault("render.stroke_width", defaultStrokeWidth)
	v.SetDefault("render.point_size", defaultPointSize)
	v.SetDefault("render.font", defaultFont)
	v.SetDefault("output.base_dir", defaultBaseDir)
	v.SetDefault("output.manifest", true)
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.service_name", defaultServiceName)
	v.SetDefault("telemetry.otlp_insecure", true)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.format", defaultLogFormat)
}

// normalize fills gaps a config file may leave: the stock league set and
// floors for geometry values that must stay positive.
func normalize(cfg *Config) {
	if len(cfg.Leagues) == 0 {
		cfg.Leagues = DefaultLeagues()
	}
	if cfg.GameDelay <= 0 {
		cfg.GameDelay = defaultGameDelay
	}
	normalizeRender(&cfg.Render)
	if cfg.ESPN.BaseURL == "" {
		cfg.ESPN.BaseURL = defaultESPNBaseURL
	}
	if cfg.ESPN.Timeout <= 0 {
		cfg.ESPN.Timeout = defaultESPNTimeout
	}
	if cfg.Output.BaseDir == "" {
		cfg.Output.BaseDir = defaultBaseDir
	}
}
