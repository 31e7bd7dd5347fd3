package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/timeutil"
)

// Provider returns a static slate of games useful for local testing and
// demoing the renderer without touching the live scoreboard API.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSchedule returns a deterministic slate for the requested league.
// Kickoffs are anchored to the requested date so time labels render the
// same way live data would.
func (p *Provider) FetchSchedule(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	_ = ctx

	day := p.now().UTC()
	if date != "" {
		if parsed, err := time.Parse(timeutil.ScheduleDateLayout, date); err == nil {
			day = parsed
		}
	}

	matchups, ok := slates[league.Slug]
	if !ok {
		return []domain.Game{}, nil
	}

	games := make([]domain.Game, 0, len(matchups))
	for i, m := range matchups {
		kickoff := time.Date(day.Year(), day.Month(), day.Day(), 19+2*i, 30, 0, 0, time.UTC)
		games = append(games, domain.Game{
			EventID:   fmt.Sprintf("fixture-%s-%d", league.Slug, i+1),
			League:    league.Name,
			StartTime: kickoff.Format("2006-01-02T15:04") + "Z",
			Away:      m.away,
			Home:      m.home,
		})
	}
	return games, nil
}

type matchup struct {
	away domain.TeamInfo
	home domain.TeamInfo
}

var slates = map[string][]matchup{
	"nba": {
		{
			away: team("nba", "LAL", "#552583", "#FDB927"),
			home: team("nba", "BOS", "#008348", "#BB9753"),
		},
		{
			away: team("nba", "GSW", "#1D428A", "#FFC72C"),
			home: team("nba", "MIA", "#98002E", "#F9A01B"),
		},
	},
	"nfl": {
		{
			away: team("nfl", "KC", "#E31837", "#FFB81C"),
			home: team("nfl", "BUF", "#00338D", "#C60C30"),
		},
	},
	"nhl": {
		{
			away: team("nhl", "COL", "#6F263D", "#236192"),
			home: team("nhl", "VGK", "#B4975A", "#333F42"),
		},
	},
	"mlb": {
		{
			away: team("mlb", "NYY", "#003087", "#E4002C"),
			home: team("mlb", "LAD", "#005A9C", "#EF3E42"),
		},
	},
}

func team(slug, abbreviation, color, altColor string) domain.TeamInfo {
	return domain.TeamInfo{
		Abbreviation: abbreviation,
		Color:        color,
		AltColor:     altColor,
		LogoURL:      fmt.Sprintf("https://a.espncdn.com/i/teamlogos/%s/500/%s.png", slug, strings.ToLower(abbreviation)),
	}
}
