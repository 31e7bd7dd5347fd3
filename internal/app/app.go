package app

import (
	"context"
	"log/slog"
	"time"

	"matchday-graphics/internal/config"
	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/download"
	"matchday-graphics/internal/logging"
	"matchday-graphics/internal/metrics"
	"matchday-graphics/internal/output"
	"matchday-graphics/internal/pipeline"
	"matchday-graphics/internal/render"
)

var metricsSetup = metrics.Setup

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// runner is the minimal pipeline behavior the app needs.
type runner interface {
	Run(ctx context.Context, date string) (domain.RunSummary, error)
}

// App is the composition root for one generator run: telemetry, schedule
// provider, render engine, and the pipeline that drives them.
type App struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	runner      runner
	metricsStop func(context.Context) error
}

// New constructs the app with default wiring.
func New(cfg config.Config, logger *slog.Logger) *App {
	recorder, metricsStop := buildMetrics(cfg, logger)

	provider := newProviderFactory(logger).build(cfg)
	engine := buildEngine(cfg.Render, logger)
	composer := render.NewComposer(engine, download.New(nil), logger)

	p := pipeline.New(provider, composer, output.NewLayout(cfg.Output.BaseDir), logger, recorder, pipeline.Options{
		Leagues:       cfg.ActiveLeagues(),
		GameDelay:     cfg.GameDelay,
		WriteManifest: cfg.Output.Manifest,
	})

	return &App{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		runner:      p,
		metricsStop: metricsStop,
	}
}

// newAppWithDeps is used for testing to inject custom components.
func newAppWithDeps(cfg config.Config, logger *slog.Logger, r runner, metricsStop func(context.Context) error) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		runner:      r,
		metricsStop: metricsStop,
	}
}

// Run executes one generation pass and flushes telemetry before returning.
func (a *App) Run(ctx context.Context, date string) (domain.RunSummary, error) {
	summary, err := a.runner.Run(ctx, date)

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if a.metricsStop != nil {
		if flushErr := a.metricsStop(flushCtx); flushErr != nil {
			logging.Warn(a.logger, "metrics shutdown failed", "error", flushErr)
		}
	}
	return summary, err
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Telemetry.Enabled,
		ServiceName:  cfg.Telemetry.ServiceName,
		OtlpEndpoint: cfg.Telemetry.OtlpEndpoint,
		OtlpInsecure: cfg.Telemetry.OtlpInsecure,
	}

	rec, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), func(context.Context) error { return nil }
	}
	return rec, shutdown
}
