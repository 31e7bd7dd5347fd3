package native

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"matchday-graphics/internal/render"
)

// Config controls the in-process engine. Zero values take the stock
// geometry used for 500x500 matchup graphics.
type Config struct {
	CanvasSize  int
	LogoSize    int
	FuzzPercent int
	BlurSigma   float64
	StrokeWidth int
	PointSize   int
	// FontFile is an optional TTF/OTF for kickoff labels; empty uses a
	// built-in bitmap face.
	FontFile string
}

// Engine renders entirely in-process. It mirrors the ImageMagick engine's
// output closely enough for environments without the convert binary, such
// as CI or minimal containers.
type Engine struct {
	cfg    Config
	layout render.Layout
	label  *labelDrawer
}

// New constructs an engine with the provided configuration.
func New(cfg Config) *Engine {
	resolved := resolveConfig(cfg)
	return &Engine{
		cfg:    resolved,
		layout: render.NewLayout(resolved.CanvasSize, resolved.LogoSize),
		label:  newLabelDrawer(resolved.FontFile, resolved.PointSize),
	}
}

// Name identifies the engine in logs.
func (e *Engine) Name() string {
	return "native"
}

// Resize fits src into the configured logo box, preserving aspect ratio.
func (e *Engine) Resize(ctx context.Context, src, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	fitted := imaging.Fit(img, e.cfg.LogoSize, e.cfg.LogoSize, imaging.Lanczos)
	if err := imaging.Save(fitted, dest); err != nil {
		return fmt.Errorf("save %s: %w", dest, err)
	}
	return nil
}

// RemoveBackground turns near-white pixels transparent. Nearness is a
// per-channel floor derived from the fuzz percentage, a close stand-in for
// ImageMagick's color-distance fuzz.
func (e *Engine) RemoveBackground(ctx context.Context, src, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}

	out := imaging.Clone(img)
	floor := uint8(255 - (255*e.cfg.FuzzPercent)/100)
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := out.NRGBAAt(x, y)
			if c.R >= floor && c.G >= floor && c.B >= floor {
				c.A = 0
				out.SetNRGBA(x, y, c)
			}
		}
	}

	if err := imaging.Save(out, dest); err != nil {
		return fmt.Errorf("save %s: %w", dest, err)
	}
	return nil
}

// Glow stacks a blurred white silhouette of src's alpha channel beneath it.
func (e *Engine) Glow(ctx context.Context, src, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}

	clean := imaging.Clone(img)
	bounds := clean.Bounds()
	silhouette := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if a := clean.NRGBAAt(x, y).A; a > 0 {
				silhouette.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: a})
			}
		}
	}

	halo := imaging.Blur(silhouette, e.cfg.BlurSigma)
	out := imaging.Overlay(halo, clean, image.Pt(0, 0), 1.0)

	if err := imaging.Save(out, dest); err != nil {
		return fmt.Errorf("save %s: %w", dest, err)
	}
	return nil
}

func resolveConfig(cfg Config) Config {
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
	return cfg
}
