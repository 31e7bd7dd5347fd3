package domain

import "testing"

func TestTeamInfoComplete(t *testing.T) {
	team := TeamInfo{Abbreviation: "LAL", Color: "#552583"}
	if !team.Complete() {
		t.Fatalf("expected team with abbreviation and color to be complete")
	}

	if (TeamInfo{Color: "#552583"}).Complete() {
		t.Fatalf("expected team without abbreviation to be incomplete")
	}
	if (TeamInfo{Abbreviation: "LAL"}).Complete() {
		t.Fatalf("expected team without color to be incomplete")
	}
}

func TestTeamInfoHasLogo(t *testing.T) {
	if (TeamInfo{}).HasLogo() {
		t.Fatalf("expected empty logo URL to report no logo")
	}
	team := TeamInfo{LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/lal.png"}
	if !team.HasLogo() {
		t.Fatalf("expected logo URL to report a logo")
	}
}

func TestGameSlug(t *testing.T) {
	game := Game{
		Away: TeamInfo{Abbreviation: "LAL"},
		Home: TeamInfo{Abbreviation: "BOS"},
	}
	if got := game.Slug(); got != "LAL_vs_BOS" {
		t.Fatalf("expected slug LAL_vs_BOS, got %s", got)
	}
}

func TestRunSummaryTotals(t *testing.T) {
	summary := RunSummary{
		Date: "20251115",
		Leagues: []LeagueSummary{
			{League: "NBA", Found: 5, Produced: 4, Skipped: 1},
			{League: "NHL", Found: 3, Produced: 3},
			{League: "MLB", FetchFailed: true},
		},
	}

	if got := summary.TotalFound(); got != 8 {
		t.Fatalf("expected 8 games found, got %d", got)
	}
	if got := summary.TotalProduced(); got != 7 {
		t.Fatalf("expected 7 graphics produced, got %d", got)
	}
}
