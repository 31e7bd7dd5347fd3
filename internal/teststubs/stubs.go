package teststubs

import (
	"context"
	"os"
	"sync/atomic"

	"matchday-graphics/internal/domain"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Games map[string][]domain.Game // keyed by league slug
	Errs  map[string]error         // keyed by league slug
	Calls atomic.Int32
}

// FetchSchedule returns the configured slate for the league while tracking calls.
func (s *StubProvider) FetchSchedule(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	_ = ctx
	_ = date
	s.Calls.Add(1)
	if err, ok := s.Errs[league.Slug]; ok && err != nil {
		return nil, err
	}
	return s.Games[league.Slug], nil
}

// ComposeCall records one composer invocation for verification in tests.
type ComposeCall struct {
	Game      domain.Game
	LeagueDir string
	DestPath  string
}

// StubComposer is a test double for the pipeline's composer.
type StubComposer struct {
	Calls    []ComposeCall
	Errs     map[string]error // keyed by game slug, e.g. "LAL_vs_BOS"
	WriteOut bool             // create DestPath on success
}

// ComposeGame records the call, then fails or writes the destination
// depending on configuration.
func (s *StubComposer) ComposeGame(ctx context.Context, game domain.Game, leagueDir, destPath string) error {
	_ = ctx
	s.Calls = append(s.Calls, ComposeCall{Game: game, LeagueDir: leagueDir, DestPath: destPath})
	if err, ok := s.Errs[game.Slug()]; ok && err != nil {
		return err
	}
	if s.WriteOut {
		if err := os.WriteFile(destPath, []byte("png"), 0o644); err != nil {
			return err
		}
	}
	return nil
}
