package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/logging"
	"matchday-graphics/internal/metrics"
	"matchday-graphics/internal/output"
	"matchday-graphics/internal/providers"
	"matchday-graphics/internal/render"
)

// Composer produces one game's graphic. Satisfied by render.Composer.
type Composer interface {
	ComposeGame(ctx context.Context, game domain.Game, leagueDir, destPath string) error
}

// Options tunes a run without widening the constructor.
type Options struct {
	Leagues       []domain.League
	GameDelay     time.Duration
	WriteManifest bool
}

// Pipeline walks every configured league for one date: fetch the slate,
// compose a graphic per game, and pace the work between games. Failures
// stay contained to the league or game they occur in.
type Pipeline struct {
	provider providers.ScheduleProvider
	composer Composer
	layout   output.Layout
	logger   *slog.Logger
	metrics  *metrics.Recorder
	opts     Options

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// New constructs a Pipeline.
func New(provider providers.ScheduleProvider, composer Composer, layout output.Layout, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Pipeline {
	if opts.GameDelay < 0 {
		opts.GameDelay = 0
	}
	return &Pipeline{
		provider: provider,
		composer: composer,
		layout:   layout,
		logger:   logger,
		metrics:  recorder,
		opts:     opts,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Run produces graphics for every configured league on the given date and
// reports what happened per league. Only the date directory failing to
// create is fatal; a broken league or game never stops the rest.
func (p *Pipeline) Run(ctx context.Context, date string) (domain.RunSummary, error) {
	summary := domain.RunSummary{Date: date}

	if _, err := p.layout.EnsureDateDir(date); err != nil {
		return summary, fmt.Errorf("create output dir for %s: %w", date, err)
	}

	logging.Info(p.logger, "run started",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(p.opts.Leagues)),
	)

	for _, league := range p.opts.Leagues {
		if ctx.Err() != nil {
			logging.Warn(p.logger, "run cancelled", slog.String(logging.FieldDate, date))
			break
		}
		summary.Leagues = append(summary.Leagues, p.processLeague(ctx, league, date))
	}

	if p.opts.WriteManifest {
		if err := p.layout.WriteManifest(output.NewManifest(summary, p.now())); err != nil {
			logging.Error(p.logger, "manifest write failed", err, slog.String(logging.FieldDate, date))
		}
	}

	logging.Info(p.logger, "run finished",
		slog.String(logging.FieldDate, date),
		slog.Int("games_found", summary.TotalFound()),
		slog.Int("graphics_produced", summary.TotalProduced()),
	)
	return summary, nil
}

func (p *Pipeline) processLeague(ctx context.Context, league domain.League, date string) domain.LeagueSummary {
	ls := domain.LeagueSummary{League: league.Slug}

	leagueDir, err := p.layout.EnsureLeagueDir(date, league)
	if err != nil {
		logging.Error(p.logger, "league dir create failed", err,
			slog.String(logging.FieldLeague, league.Slug),
			slog.String(logging.FieldPath, p.layout.LeagueDir(date, league)),
		)
		return ls
	}

	start := p.now()
	games, err := p.provider.FetchSchedule(ctx, league, date)
	p.metrics.RecordFetch(league.Slug, p.now().Sub(start), err)
	if err != nil {
		ls.FetchFailed = true
		logging.Error(p.logger, "schedule fetch failed", err,
			slog.String(logging.FieldLeague, league.Slug),
			slog.String(logging.FieldDate, date),
		)
		return ls
	}

	ls.Found = len(games)
	p.metrics.RecordGamesFound(league.Slug, len(games))
	if len(games) == 0 {
		logging.Info(p.logger, "no games scheduled",
			slog.String(logging.FieldLeague, league.Slug),
			slog.String(logging.FieldDate, date),
		)
		return ls
	}

	for _, game := range games {
		if ctx.Err() != nil {
			logging.Warn(p.logger, "league processing cancelled",
				slog.String(logging.FieldLeague, league.Slug),
			)
			break
		}
		if p.processGame(ctx, league, game, date, leagueDir, &ls) {
			p.sleep(ctx, p.opts.GameDelay)
		}
	}
	return ls
}

// processGame reports whether composition was attempted; games dropped on
// the completeness guard do not count against the pacing delay.
func (p *Pipeline) processGame(ctx context.Context, league domain.League, game domain.Game, date, leagueDir string, ls *domain.LeagueSummary) bool {
	if !game.Away.Complete() || !game.Home.Complete() {
		ls.Skipped++
		p.metrics.RecordSkip(league.Slug, reasonIncomplete)
		logging.Warn(p.logger, "game skipped",
			slog.String(logging.FieldLeague, league.Slug),
			slog.String(logging.FieldGame, game.Slug()),
			slog.String(logging.FieldReason, reasonIncomplete),
		)
		return false
	}

	dest := p.layout.GraphicPath(date, league, game)
	start := p.now()
	err := p.composer.ComposeGame(ctx, game, leagueDir, dest)
	if err != nil {
		reason := skipReason(err)
		ls.Skipped++
		p.metrics.RecordSkip(league.Slug, reason)
		switch reason {
		case reasonDownload:
			p.metrics.RecordDownloadError(league.Slug)
		case reasonRender:
			p.metrics.RecordRenderError(league.Slug)
		}
		logging.Warn(p.logger, "graphic skipped",
			slog.String(logging.FieldLeague, league.Slug),
			slog.String(logging.FieldGame, game.Slug()),
			slog.String(logging.FieldReason, reason),
			"error", err,
		)
		return true
	}

	ls.Produced++
	ls.Files = append(ls.Files, filepath.Base(dest))
	p.metrics.RecordGraphic(league.Slug, p.now().Sub(start))
	logging.Info(p.logger, "graphic produced",
		slog.String(logging.FieldLeague, league.Slug),
		slog.String(logging.FieldGame, game.Slug()),
		slog.String(logging.FieldPath, dest),
		slog.Int64(logging.FieldDurationMS, p.now().Sub(start).Milliseconds()),
	)
	return true
}

// skipReason buckets a compose failure for metrics and logs.
func skipReason(err error) string {
	if errors.Is(err, render.ErrMissingLogo) {
		return reasonMissingLogo
	}
	var stage *render.StageError
	if errors.As(err, &stage) {
		switch stage.Stage {
		case render.StageDownload:
			return reasonDownload
		case render.StagePublish:
			return reasonOutput
		}
	}
	return reasonRender
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
