package output

import (
	"encoding/json"
	"os"
	"time"

	"matchday-graphics/internal/domain"
)

// Manifest summarizes one run for downstream consumers.
type Manifest struct {
	Version       int                    `json:"version"`
	Date          string                 `json:"date"`
	GeneratedAt   time.Time              `json:"generatedAt"`
	Leagues       []domain.LeagueSummary `json:"leagues"`
	TotalFound    int                    `json:"totalFound"`
	TotalProduced int                    `json:"totalProduced"`
}

// NewManifest builds a manifest from a run summary.
func NewManifest(summary domain.RunSummary, generatedAt time.Time) Manifest {
	leagues := summary.Leagues
	if leagues == nil {
		leagues = []domain.LeagueSummary{}
	}
	return Manifest{
		Version:       manifestVersion,
		Date:          summary.Date,
		GeneratedAt:   generatedAt.UTC(),
		Leagues:       leagues,
		TotalFound:    summary.TotalFound(),
		TotalProduced: summary.TotalProduced(),
	}
}

// WriteManifest persists the manifest under the run's date directory. The
// write goes through a temp file and rename so readers never observe a
// partial manifest.
func (l Layout) WriteManifest(m Manifest) error {
	path := l.ManifestPath(m.Date)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
