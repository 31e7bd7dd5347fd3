package testutil

import (
	"testing"
	"time"
)

func TestClockHelper(t *testing.T) {
	now := time.Date(2025, 11, 15, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
}

func TestFixturesHelper(t *testing.T) {
	league := SampleLeague()
	if league.Slug != "nba" || league.Sport != "basketball" {
		t.Fatalf("unexpected league fixture %+v", league)
	}

	game := SampleGame("LAL", "BOS")
	if game.Slug() != "LAL_vs_BOS" {
		t.Fatalf("unexpected game slug %s", game.Slug())
	}
	if !game.Away.Complete() || !game.Home.Complete() {
		t.Fatalf("expected drawable teams, got %+v", game)
	}
	if !game.Away.HasLogo() || !game.Home.HasLogo() {
		t.Fatalf("expected logo URLs, got %+v", game)
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
}
