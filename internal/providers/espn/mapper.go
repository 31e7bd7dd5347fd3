package espn

import (
	"strings"

	"matchday-graphics/internal/domain"
)

func mapScoreboard(league domain.League, payload scoreboardResponse) []domain.Game {
	games := make([]domain.Game, 0, len(payload.Events))
	for _, event := range payload.Events {
		if game, ok := mapEvent(league, event); ok {
			games = append(games, game)
		}
	}
	return games
}

// mapEvent normalizes one scoreboard event. Events without a home and an
// away competitor are dropped; anything drawable is defaulted instead.
func mapEvent(league domain.League, event eventResponse) (domain.Game, bool) {
	if len(event.Competitions) == 0 {
		return domain.Game{}, false
	}

	var away, home *competitorResponse
	for i := range event.Competitions[0].Competitors {
		competitor := &event.Competitions[0].Competitors[i]
		switch competitor.HomeAway {
		case "away":
			away = competitor
		case "home":
			home = competitor
		}
	}
	if away == nil || home == nil {
		return domain.Game{}, false
	}

	return domain.Game{
		EventID:   event.ID,
		League:    league.Name,
		StartTime: event.Date,
		Away:      mapTeamInfo(away.Team),
		Home:      mapTeamInfo(home.Team),
	}, true
}

func mapTeamInfo(team teamResponse) domain.TeamInfo {
	abbreviation := team.Abbreviation
	if abbreviation == "" {
		abbreviation = defaultAbbreviation
	}

	return domain.TeamInfo{
		Abbreviation: abbreviation,
		Color:        normalizeColor(team.Color, defaultPrimaryColor),
		AltColor:     normalizeColor(team.AlternateColor, defaultAltColor),
		LogoURL:      resolveLogoURL(team),
	}
}

// normalizeColor yields a drawable "#RRGGBB" string whether the feed sends
// bare hex, prefixed hex, or nothing at all.
func normalizeColor(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return "#" + strings.TrimLeft(raw, "#")
}

// resolveLogoURL picks the logo entry tagged with the standard rel, falling
// back to the first entry, then to the flat logo field. An empty result
// means the team cannot be rendered.
func resolveLogoURL(team teamResponse) string {
	if len(team.Logos) > 0 {
		chosen := team.Logos[0]
		for _, logo := range team.Logos {
			if hasRel(logo.Rel, preferredLogoRel) {
				chosen = logo
				break
			}
		}
		if chosen.Href != "" {
			return chosen.Href
		}
	}
	return team.Logo
}

func hasRel(rels []string, want string) bool {
	for _, rel := range rels {
		if rel == want {
			return true
		}
	}
	return false
}
