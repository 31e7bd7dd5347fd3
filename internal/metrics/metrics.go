package metrics

import (
	"sync"
	"time"
)

type leagueStats struct {
	fetchCalls        int
	fetchErrors       int
	gamesFound        int
	produced          int
	skipped           int
	downloadErrors    int
	renderErrors      int
	lastFetchLatency  time.Duration
	lastRenderLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about a run, keyed by
// league. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*leagueStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*leagueStats),
		otel:  otel,
	}
}

// RecordFetch increments fetch counters for a league and stores the last
// observed scoreboard latency.
func (r *Recorder) RecordFetch(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(league)
	stats.fetchCalls++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.fetchErrors++
	}
	if r.otel != nil {
		r.otel.recordFetch(league, duration, err)
	}
}

// RecordGamesFound tracks how many drawable games a fetch returned.
func (r *Recorder) RecordGamesFound(league string, count int) {
	if r == nil {
		return
	}

	stats := r.ensureStats(league)
	stats.gamesFound += count
	if r.otel != nil {
		r.otel.recordGamesFound(league, count)
	}
}

// RecordGraphic tracks a finished matchup graphic and its render latency.
func (r *Recorder) RecordGraphic(league string, duration time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(league)
	stats.produced++
	stats.lastRenderLatency = duration
	if r.otel != nil {
		r.otel.recordGraphic(league, duration)
	}
}

// RecordSkip tracks a game that produced no graphic, bucketed by reason.
func (r *Recorder) RecordSkip(league, reason string) {
	if r == nil {
		return
	}

	r.ensureStats(league).skipped++
	if r.otel != nil {
		r.otel.recordSkip(league, reason)
	}
}

// RecordDownloadError tracks a failed logo download.
func (r *Recorder) RecordDownloadError(league string) {
	if r == nil {
		return
	}

	r.ensureStats(league).downloadErrors++
	if r.otel != nil {
		r.otel.recordDownloadError(league)
	}
}

// RecordRenderError tracks an image treatment or composite failure.
func (r *Recorder) RecordRenderError(league string) {
	if r == nil {
		return
	}

	r.ensureStats(league).renderErrors++
	if r.otel != nil {
		r.otel.recordRenderError(league)
	}
}

// FetchCalls returns the total scoreboard fetches recorded for a league.
func (r *Recorder) FetchCalls(league string) int {
	return r.Snapshot(league).FetchCalls
}

// FetchErrors returns the total failed fetches recorded for a league.
func (r *Recorder) FetchErrors(league string) int {
	return r.Snapshot(league).FetchErrors
}

// Produced returns the graphics completed for a league.
func (r *Recorder) Produced(league string) int {
	return r.Snapshot(league).Produced
}

// Skipped returns the games skipped for a league.
func (r *Recorder) Skipped(league string) int {
	return r.Snapshot(league).Skipped
}

// Snapshot is a copy of the current stats for one league.
type Snapshot struct {
	FetchCalls        int
	FetchErrors       int
	GamesFound        int
	Produced          int
	Skipped           int
	DownloadErrors    int
	RenderErrors      int
	LastFetchLatency  time.Duration
	LastRenderLatency time.Duration
}

func (r *Recorder) Snapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(league)
	return Snapshot{
		FetchCalls:        stats.fetchCalls,
		FetchErrors:       stats.fetchErrors,
		GamesFound:        stats.gamesFound,
		Produced:          stats.produced,
		Skipped:           stats.skipped,
		DownloadErrors:    stats.downloadErrors,
		RenderErrors:      stats.renderErrors,
		LastFetchLatency:  stats.lastFetchLatency,
		LastRenderLatency: stats.lastRenderLatency,
	}
}

func (r *Recorder) ensureStats(league string) *leagueStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[league]
	if !ok {
		stats = &leagueStats{}
		r.stats[league] = stats
	}
	return stats
}

func (r *Recorder) snapshot(league string) leagueStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[league]; ok && stats != nil {
		return *stats
	}
	return leagueStats{}
}
