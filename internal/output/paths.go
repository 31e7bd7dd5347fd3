package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"matchday-graphics/internal/domain"
)

// Layout maps run dates, leagues, and games onto the output tree:
//
//	<base>/<date>/<league>/<league>_<AWAY>_vs_<HOME>.png
type Layout struct {
	BaseDir string
}

// NewLayout constructs a layout rooted at baseDir, defaulting when empty.
func NewLayout(baseDir string) Layout {
	if baseDir == "" {
		baseDir = defaultBaseDir
	}
	return Layout{BaseDir: baseDir}
}

// DateDir builds the directory for one run date.
func (l Layout) DateDir(date string) string {
	return filepath.Join(l.BaseDir, date)
}

// LeagueDir builds the directory for one league under a run date.
func (l Layout) LeagueDir(date string, league domain.League) string {
	return filepath.Join(l.DateDir(date), strings.ToLower(league.Slug))
}

// GraphicPath builds the final path for one game's graphic.
func (l Layout) GraphicPath(date string, league domain.League, game domain.Game) string {
	name := fmt.Sprintf("%s_%s.png", strings.ToLower(league.Slug), game.Slug())
	return filepath.Join(l.LeagueDir(date, league), name)
}

// ManifestPath builds the path for the run manifest under a date dir.
func (l Layout) ManifestPath(date string) string {
	return filepath.Join(l.DateDir(date), manifestName)
}

// EnsureDateDir creates the date directory and returns its path.
func (l Layout) EnsureDateDir(date string) (string, error) {
	dir := l.DateDir(date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// EnsureLeagueDir creates the league directory and returns its path.
func (l Layout) EnsureLeagueDir(date string, league domain.League) (string, error) {
	dir := l.LeagueDir(date, league)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
