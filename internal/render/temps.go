package render

import (
	"log/slog"
	"os"
	"path/filepath"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/logging"
)

// logoTemps holds one side's intermediate file paths.
type logoTemps struct {
	raw     string
	resized string
	clean   string
	glow    string
}

// tempSet holds every intermediate path a single game can produce.
type tempSet struct {
	away  logoTemps
	home  logoTemps
	scene string
	final string
}

func newTempSet(dir string, game domain.Game) tempSet {
	return tempSet{
		away:  sideTemps(dir, game.Away.Abbreviation),
		home:  sideTemps(dir, game.Home.Abbreviation),
		scene: filepath.Join(dir, "temp_"+game.Slug()+"_scene.png"),
		final: filepath.Join(dir, "temp_"+game.Slug()+"_final.png"),
	}
}

func sideTemps(dir, abbreviation string) logoTemps {
	prefix := filepath.Join(dir, "temp_"+abbreviation+"_logo")
	return logoTemps{
		raw:     prefix + ".png",
		resized: prefix + "_resized.png",
		clean:   prefix + "_clean.png",
		glow:    prefix + "_glow.png",
	}
}

func (t tempSet) all() []string {
	return []string{
		t.away.raw, t.away.resized, t.away.clean, t.away.glow,
		t.home.raw, t.home.resized, t.home.clean, t.home.glow,
		t.scene, t.final,
	}
}

// sweep removes whatever intermediates exist. Missing files are expected;
// anything else is logged and left for the operator.
func (t tempSet) sweep(logger *slog.Logger) {
	for _, path := range t.all() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logging.Warn(logger, "temp file not removed",
				slog.String(logging.FieldPath, path),
				"error", err,
			)
		}
	}
}
