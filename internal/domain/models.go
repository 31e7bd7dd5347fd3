package domain

// League identifies one scoreboard feed: the sport segment and league slug
// used in upstream URLs plus the display name used in file names and logs.
type League struct {
	Sport string `mapstructure:"sport" json:"sport"`
	Slug  string `mapstructure:"slug" json:"slug"`
	Name  string `mapstructure:"name" json:"name"`
}

// TeamInfo carries the fields needed to draw one side of a matchup graphic.
type TeamInfo struct {
	Abbreviation string
	Color        string
	AltColor     string
	LogoURL      string
}

// Complete reports whether the drawable fields are present. The logo is
// checked separately because it gates downloads rather than rendering.
func (t TeamInfo) Complete() bool {
	return t.Abbreviation != "" && t.Color != ""
}

// HasLogo reports whether a logo URL was resolved for the team.
func (t TeamInfo) HasLogo() bool {
	return t.LogoURL != ""
}

// Game is one scheduled matchup extracted from a scoreboard feed.
// StartTime keeps the raw upstream kickoff string; label formatting is a
// rendering concern.
type Game struct {
	EventID   string
	League    string
	StartTime string
	Away      TeamInfo
	Home      TeamInfo
}

// Slug returns the matchup identifier used in file names, AWAY_vs_HOME.
func (g Game) Slug() string {
	return g.Away.Abbreviation + "_vs_" + g.Home.Abbreviation
}
