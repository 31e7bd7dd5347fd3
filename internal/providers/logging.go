package providers

import (
	"context"
	"log/slog"
	"time"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/logging"
)

// loggingProvider wraps a ScheduleProvider and records every fetch with
// provider name, league, date, result count and latency.
type loggingProvider struct {
	inner    ScheduleProvider
	logger   *slog.Logger
	provider string
	now      func() time.Time
}

// NewLoggingProvider wraps the given provider with structured fetch logging.
func NewLoggingProvider(inner ScheduleProvider, logger *slog.Logger, provider string) ScheduleProvider {
	return &loggingProvider{
		inner:    inner,
		logger:   logger,
		provider: provider,
		now:      time.Now,
	}
}

func (p *loggingProvider) FetchSchedule(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	if p.inner == nil {
		logging.Warn(p.logger, "provider unavailable", slog.String(logging.FieldProvider, p.provider))
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	games, err := p.inner.FetchSchedule(ctx, league, date)
	elapsed := p.now().Sub(start)

	if err != nil {
		logging.Error(p.logger, "schedule fetch failed", err,
			slog.String(logging.FieldProvider, p.provider),
			slog.String(logging.FieldLeague, league.Slug),
			slog.String(logging.FieldDate, date),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return nil, err
	}

	logging.Info(p.logger, "schedule fetched",
		slog.String(logging.FieldProvider, p.provider),
		slog.String(logging.FieldLeague, league.Slug),
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return games, nil
}
