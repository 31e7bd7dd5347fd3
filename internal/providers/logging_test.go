package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/testutil"
)

type scriptedProvider struct {
	games []domain.Game
	err   error
	calls int
}

func (s *scriptedProvider) FetchSchedule(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.games, nil
}

func TestLoggingProviderPassesThroughGames(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	inner := &scriptedProvider{games: []domain.Game{{EventID: "401585183"}}}
	provider := NewLoggingProvider(inner, logger, "espn")

	games, err := provider.FetchSchedule(context.Background(), domain.League{Slug: "nba"}, "20251115")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	if len(games) != 1 || games[0].EventID != "401585183" {
		t.Fatalf("expected inner games passed through, got %+v", games)
	}

	out := buf.String()
	if !strings.Contains(out, "schedule fetched") {
		t.Fatalf("expected fetch log entry, got %q", out)
	}
	if !strings.Contains(out, "espn") || !strings.Contains(out, "nba") {
		t.Fatalf("expected provider and league fields, got %q", out)
	}
}

func TestLoggingProviderLogsFailures(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	inner := &scriptedProvider{err: errors.New("boom")}
	provider := NewLoggingProvider(inner, logger, "espn")

	_, err := provider.FetchSchedule(context.Background(), domain.League{Slug: "nhl"}, "20251115")
	if err == nil {
		t.Fatalf("expected inner error to surface")
	}
	if !strings.Contains(buf.String(), "schedule fetch failed") {
		t.Fatalf("expected failure log entry, got %q", buf.String())
	}
}

func TestLoggingProviderWithoutInner(t *testing.T) {
	provider := NewLoggingProvider(nil, nil, "espn")

	_, err := provider.FetchSchedule(context.Background(), domain.League{Slug: "nba"}, "")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
