package fixture

import (
	"context"
	"testing"
	"time"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/timeutil"
)

func TestFetchScheduleAnchorsKickoffsToDate(t *testing.T) {
	provider := New()
	provider.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	games, err := provider.FetchSchedule(context.Background(), domain.League{Slug: "nba", Name: "NBA"}, "20251115")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 fixture games, got %d", len(games))
	}

	if games[0].StartTime != "2025-11-15T19:30Z" {
		t.Fatalf("unexpected kickoff %s", games[0].StartTime)
	}
	if got := timeutil.FormatKickoff(games[0].StartTime); got != "1:30 PM CT" {
		t.Fatalf("expected renderable kickoff label, got %s", got)
	}
	if games[0].League != "NBA" {
		t.Fatalf("expected league name stamped, got %s", games[0].League)
	}
}

func TestFetchScheduleTeamsAreDrawable(t *testing.T) {
	provider := New()

	games, err := provider.FetchSchedule(context.Background(), domain.League{Slug: "nhl", Name: "NHL"}, "20251115")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, game := range games {
		for _, side := range []domain.TeamInfo{game.Away, game.Home} {
			if !side.Complete() || !side.HasLogo() {
				t.Fatalf("expected fixture team to be drawable, got %+v", side)
			}
		}
	}
}

func TestFetchScheduleUnknownLeagueIsEmpty(t *testing.T) {
	provider := New()

	games, err := provider.FetchSchedule(context.Background(), domain.League{Slug: "xfl", Name: "XFL"}, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected empty slate, got %d", len(games))
	}
}
