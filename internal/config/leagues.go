package config

import "matchday-graphics/internal/domain"

// DefaultLeagues returns the stock league set processed when the config
// file does not override it.
func DefaultLeagues() []domain.League {
	return []domain.League{
		{Sport: "basketball", Slug: "nba", Name: "NBA"},
		{Sport: "football", Slug: "nfl", Name: "NFL"},
		{Sport: "hockey", Slug: "nhl", Name: "NHL"},
		{Sport: "baseball", Slug: "mlb", Name: "MLB"},
	}
}
