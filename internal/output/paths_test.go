package output

import (
	"os"
	"path/filepath"
	"testing"

	"matchday-graphics/internal/domain"
)

func TestLayoutPaths(t *testing.T) {
	layout := NewLayout("out")
	league := domain.League{Sport: "basketball", Slug: "nba", Name: "NBA"}
	game := domain.Game{
		Away: domain.TeamInfo{Abbreviation: "LAL"},
		Home: domain.TeamInfo{Abbreviation: "BOS"},
	}

	if got, want := layout.DateDir("20251115"), filepath.Join("out", "20251115"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got, want := layout.LeagueDir("20251115", league), filepath.Join("out", "20251115", "nba"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	want := filepath.Join("out", "20251115", "nba", "nba_LAL_vs_BOS.png")
	if got := layout.GraphicPath("20251115", league, game); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got, want := layout.ManifestPath("20251115"), filepath.Join("out", "20251115", "manifest.json"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNewLayoutDefaultsBaseDir(t *testing.T) {
	layout := NewLayout("")
	if layout.BaseDir != "game_graphics" {
		t.Fatalf("expected default base dir, got %s", layout.BaseDir)
	}
}

func TestGraphicPathLowercasesLeague(t *testing.T) {
	layout := NewLayout("out")
	league := domain.League{Sport: "hockey", Slug: "NHL", Name: "NHL"}
	game := domain.Game{
		Away: domain.TeamInfo{Abbreviation: "COL"},
		Home: domain.TeamInfo{Abbreviation: "VGK"},
	}

	want := filepath.Join("out", "20251115", "nhl", "nhl_COL_vs_VGK.png")
	if got := layout.GraphicPath("20251115", league, game); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestEnsureDirsCreateNestedTree(t *testing.T) {
	layout := NewLayout(filepath.Join(t.TempDir(), "graphics"))
	league := domain.League{Sport: "baseball", Slug: "mlb", Name: "MLB"}

	dateDir, err := layout.EnsureDateDir("20251115")
	if err != nil {
		t.Fatalf("expected date dir to be created, got %v", err)
	}
	if info, err := os.Stat(dateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, got %v", dateDir, err)
	}

	leagueDir, err := layout.EnsureLeagueDir("20251115", league)
	if err != nil {
		t.Fatalf("expected league dir to be created, got %v", err)
	}
	if info, err := os.Stat(leagueDir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, got %v", leagueDir, err)
	}
}

func TestEnsureDateDirFailsWhenBaseIsFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(base, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	layout := NewLayout(base)
	if _, err := layout.EnsureDateDir("20251115"); err == nil {
		t.Fatal("expected error when base path is a regular file")
	}
}
