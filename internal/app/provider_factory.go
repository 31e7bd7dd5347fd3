package app

import (
	"log/slog"

	"matchday-graphics/internal/config"
	"matchday-graphics/internal/logging"
	"matchday-graphics/internal/providers"
	"matchday-graphics/internal/providers/espn"
	"matchday-graphics/internal/providers/fixture"
)

// providerFactory assembles the schedule provider with the shared logging
// wrapper. A failed fetch skips the league for the run; it is not retried.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base, name := selectProvider(cfg, f.logger)
	return providers.NewLoggingProvider(base, f.logger, name)
}

func selectProvider(cfg config.Config, logger *slog.Logger) (providers.ScheduleProvider, string) {
	switch cfg.Source {
	case "espn", "":
		return newESPNClient(cfg), "espn"
	case "fixture":
		return fixture.New(), "fixture"
	default:
		if logger != nil {
			logger.Warn("unknown schedule source, falling back to espn",
				slog.String(logging.FieldProvider, cfg.Source),
			)
		}
		return newESPNClient(cfg), "espn"
	}
}

func newESPNClient(cfg config.Config) *espn.Client {
	return espn.NewClient(espn.Config{
		BaseURL: cfg.ESPN.BaseURL,
		Timeout: cfg.ESPN.Timeout,
	})
}
