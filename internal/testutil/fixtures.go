package testutil

import (
	"strings"

	"matchday-graphics/internal/domain"
)

// SampleLeague returns an NBA league fixture.
func SampleLeague() domain.League {
	return domain.League{Sport: "basketball", Slug: "nba", Name: "NBA"}
}

// SampleGame returns a drawable matchup fixture for the given abbreviations.
func SampleGame(away, home string) domain.Game {
	return domain.Game{
		EventID:   "401585601",
		League:    "nba",
		StartTime: "2025-11-15T19:30Z",
		Away:      sampleTeam(away, "552583"),
		Home:      sampleTeam(home, "008348"),
	}
}

func sampleTeam(abbr, color string) domain.TeamInfo {
	return domain.TeamInfo{
		Abbreviation: abbr,
		Color:        "#" + color,
		AltColor:     "#FFFFFF",
		LogoURL:      "https://a.espncdn.com/i/teamlogos/nba/500/" + strings.ToLower(abbr) + ".png",
	}
}
