package domain

// LeagueSummary tallies one league's results within a run.
type LeagueSummary struct {
	League      string   `json:"league"`
	FetchFailed bool     `json:"fetchFailed,omitempty"`
	Found       int      `json:"found"`
	Produced    int      `json:"produced"`
	Skipped     int      `json:"skipped"`
	Files       []string `json:"files,omitempty"`
}

// RunSummary aggregates every league processed for one schedule date.
type RunSummary struct {
	Date    string          `json:"date"`
	Leagues []LeagueSummary `json:"leagues"`
}

// TotalProduced sums finished graphics across leagues.
func (s RunSummary) TotalProduced() int {
	total := 0
	for _, league := range s.Leagues {
		total += league.Produced
	}
	return total
}

// TotalFound sums scheduled games across leagues.
func (s RunSummary) TotalFound() int {
	total := 0
	for _, league := range s.Leagues {
		total += league.Found
	}
	return total
}
