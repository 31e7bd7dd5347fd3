package magick

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"sync"

	"matchday-graphics/internal/render"
)

// Config controls the ImageMagick engine. Zero values take the stock
// geometry used for 500x500 matchup graphics.
type Config struct {
	ConvertBin  string
	IdentifyBin string
	CanvasSize  int
	LogoSize    int
	FuzzPercent int
	BlurSigma   float64
	StrokeWidth int
	PointSize   int
	Font        string
}

// Engine renders through the ImageMagick convert/identify binaries, one
// invocation per pipeline step.
type Engine struct {
	cfg    Config
	layout render.Layout
	run    runner

	fontOnce sync.Once
	font     string
}

// New constructs an engine with the provided configuration.
func New(cfg Config) *Engine {
	resolved := resolveConfig(cfg)
	return &Engine{
		cfg:    resolved,
		layout: render.NewLayout(resolved.CanvasSize, resolved.LogoSize),
		run:    execRunner{},
	}
}

// Available reports whether the convert binary is on PATH.
func Available() bool {
	_, err := exec.LookPath(defaultConvertBin)
	return err == nil
}

// Name identifies the engine in logs.
func (e *Engine) Name() string {
	return "magick"
}

// Resize fits src into the configured logo box, preserving aspect ratio.
func (e *Engine) Resize(ctx context.Context, src, dest string) error {
	box := fmt.Sprintf("%dx%d", e.cfg.LogoSize, e.cfg.LogoSize)
	return e.run.run(ctx, e.cfg.ConvertBin, src, "-resize", box, dest)
}

// RemoveBackground turns near-white pixels transparent within the
// configured fuzz tolerance.
func (e *Engine) RemoveBackground(ctx context.Context, src, dest string) error {
	fuzz := fmt.Sprintf("%d%%", e.cfg.FuzzPercent)
	return e.run.run(ctx, e.cfg.ConvertBin, src, "-fuzz", fuzz, "-transparent", "white", dest)
}

// Glow stacks a blurred white silhouette of src's alpha channel beneath it.
func (e *Engine) Glow(ctx context.Context, src, dest string) error {
	blur := fmt.Sprintf("0x%g", e.cfg.BlurSigma)
	return e.run.run(ctx, e.cfg.ConvertBin, src,
		"(", "+clone", "-alpha", "extract", "-background", "white", "-alpha", "shape", "-blur", blur, ")",
		"+swap", "-background", "none", "-compose", "Over", "-composite",
		dest,
	)
}

// Composite draws the away-colored canvas, the home-colored triangle, the
// white divider and both glow-treated logos in a single invocation.
func (e *Engine) Composite(ctx context.Context, scene render.Scene, dest string) error {
	size := fmt.Sprintf("%dx%d", e.cfg.CanvasSize, e.cfg.CanvasSize)

	triangle := e.layout.HomeTriangle()
	polygon := fmt.Sprintf("polygon %d,%d %d,%d %d,%d",
		triangle[0][0], triangle[0][1],
		triangle[1][0], triangle[1][1],
		triangle[2][0], triangle[2][1],
	)

	x1, y1, x2, y2 := e.layout.DividerEndpoints()
	divider := fmt.Sprintf("line %d,%d %d,%d", x1, y1, x2, y2)

	awayX, awayY := e.layout.AwayLogoOffset()
	homeX, homeY := e.layout.HomeLogoOffset()

	return e.run.run(ctx, e.cfg.ConvertBin,
		"-size", size, "xc:"+scene.AwayColor,
		"-fill", scene.HomeColor, "-draw", polygon,
		"-strokewidth", strconv.Itoa(e.cfg.StrokeWidth), "-stroke", "white", "-fill", "none", "-draw", divider,
		scene.AwayLogoPath, "-geometry", fmt.Sprintf("+%d+%d", awayX, awayY), "-composite",
		scene.HomeLogoPath, "-geometry", fmt.Sprintf("+%d+%d", homeX, homeY), "-composite",
		dest,
	)
}

// Annotate copies src to dest with the kickoff label drawn top-center.
func (e *Engine) Annotate(ctx context.Context, src, dest, label string) error {
	offset := fmt.Sprintf("+0+%d", e.layout.LabelOffsetY())
	return e.run.run(ctx, e.cfg.ConvertBin, src,
		"-pointsize", strconv.Itoa(e.cfg.PointSize),
		"-font", e.fontFace(ctx),
		"-fill", "white", "-gravity", "North",
		"-annotate", offset, label,
		dest,
	)
}

func resolveConfig(cfg Config) Config {
	if cfg.ConvertBin == "" {
		cfg.ConvertBin = defaultConvertBin
	}
	if cfg.IdentifyBin == "" {
		cfg.IdentifyBin = defaultIdentifyBin
	}
	if cfg.CanvasSize <= 0 {
		cfg.CanvasSize = defaultCanvasSize
	}
	if cfg.LogoSize <= 0 {
		cfg.LogoSize = defaultLogoSize
	}
	if cfg.FuzzPercent <= 0 {
		cfg.FuzzPercent = defaultFuzzPercent
	}
	if cfg.BlurSigma <= 0 {
		cfg.BlurSigma = defaultBlurSigma
	}
	if cfg.StrokeWidth <= 0 {
		cfg.StrokeWidth = defaultStrokeWidth
	}
	if cfg.PointSize <= 0 {
		cfg.PointSize = defaultPointSize
	}
	if cfg.Font == "" {
		cfg.Font = defaultFont
	}
	return cfg
}
