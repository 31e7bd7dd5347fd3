package espn

// Wire shapes for the public scoreboard endpoint. Fields we do not read are
// omitted so feed changes elsewhere cannot break decoding.
type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	ShortName    string                `json:"shortName"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	Abbreviation   string         `json:"abbreviation"`
	Color          string         `json:"color"`
	AlternateColor string         `json:"alternateColor"`
	Logos          []logoResponse `json:"logos"`
	Logo           string         `json:"logo"`
}

type logoResponse struct {
	Href string   `json:"href"`
	Rel  []string `json:"rel"`
}
