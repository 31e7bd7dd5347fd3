package render

import (
	"context"
	"log/slog"
	"os"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/timeutil"
)

// LogoFetcher downloads a remote logo to a local path.
type LogoFetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Composer runs the per-game image pipeline: download both logos, treat
// each one, then composite the final graphic. Intermediate files live in
// the league directory and are removed on every exit path, success or not.
type Composer struct {
	engine  Engine
	fetcher LogoFetcher
	logger  *slog.Logger
}

// NewComposer wires an engine and a logo fetcher into a Composer.
func NewComposer(engine Engine, fetcher LogoFetcher, logger *slog.Logger) *Composer {
	return &Composer{
		engine:  engine,
		fetcher: fetcher,
		logger:  logger,
	}
}

// ComposeGame builds destPath for one game, staging temp files inside
// leagueDir. The final file appears atomically; a failure at any stage
// returns a StageError and leaves no output for this game.
func (c *Composer) ComposeGame(ctx context.Context, game domain.Game, leagueDir, destPath string) error {
	if !game.Away.HasLogo() || !game.Home.HasLogo() {
		return ErrMissingLogo
	}

	temps := newTempSet(leagueDir, game)
	defer temps.sweep(c.logger)

	if err := c.fetcher.Fetch(ctx, game.Away.LogoURL, temps.away.raw); err != nil {
		return stageErr(StageDownload, err)
	}
	if err := c.fetcher.Fetch(ctx, game.Home.LogoURL, temps.home.raw); err != nil {
		return stageErr(StageDownload, err)
	}

	if err := c.treatLogo(ctx, temps.away); err != nil {
		return err
	}
	if err := c.treatLogo(ctx, temps.home); err != nil {
		return err
	}

	scene := Scene{
		AwayColor:    game.Away.Color,
		HomeColor:    game.Home.Color,
		AwayLogoPath: temps.away.glow,
		HomeLogoPath: temps.home.glow,
	}
	if err := c.engine.Composite(ctx, scene, temps.scene); err != nil {
		return stageErr(StageComposite, err)
	}

	label := timeutil.FormatKickoff(game.StartTime)
	if err := c.engine.Annotate(ctx, temps.scene, temps.final, label); err != nil {
		return stageErr(StageAnnotate, err)
	}

	// Publish with a rename so a rerun replaces the previous graphic in one
	// step and a crash never leaves a half-written final file.
	if err := os.Rename(temps.final, destPath); err != nil {
		return stageErr(StagePublish, err)
	}
	return nil
}

// treatLogo runs one side's logo through resize, background removal and
// the glow pass.
func (c *Composer) treatLogo(ctx context.Context, temps logoTemps) error {
	if err := c.engine.Resize(ctx, temps.raw, temps.resized); err != nil {
		return stageErr(StageResize, err)
	}
	if err := c.engine.RemoveBackground(ctx, temps.resized, temps.clean); err != nil {
		return stageErr(StageClean, err)
	}
	if err := c.engine.Glow(ctx, temps.clean, temps.glow); err != nil {
		return stageErr(StageGlow, err)
	}
	return nil
}
