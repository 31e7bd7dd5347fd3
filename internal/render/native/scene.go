package native

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"matchday-graphics/internal/render"
)

// Composite paints the split-color canvas, the white divider, and both
// treated logos into a single scene image.
func (e *Engine) Composite(ctx context.Context, scene render.Scene, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	size := e.cfg.CanvasSize
	canvas := imaging.New(size, size, parseHex(scene.AwayColor))
	home := parseHex(scene.HomeColor)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	startX, startY, endX, _ := e.layout.DividerEndpoints()
	half := e.cfg.StrokeWidth / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Home half sits below the anti-diagonal from top right to
			// bottom left.
			if x+y >= size {
				canvas.SetNRGBA(x, y, home)
			}
			d := x + y - (startX + startY)
			if d < 0 {
				d = -d
			}
			if d <= half && x >= startX && x <= endX {
				canvas.SetNRGBA(x, y, white)
			}
		}
	}

	awayLogo, err := imaging.Open(scene.AwayLogoPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", scene.AwayLogoPath, err)
	}
	homeLogo, err := imaging.Open(scene.HomeLogoPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", scene.HomeLogoPath, err)
	}

	awayX, awayY := e.layout.AwayLogoOffset()
	homeX, homeY := e.layout.HomeLogoOffset()
	out := imaging.Overlay(canvas, awayLogo, image.Pt(awayX, awayY), 1.0)
	out = imaging.Overlay(out, homeLogo, image.Pt(homeX, homeY), 1.0)

	if err := imaging.Save(out, dest); err != nil {
		return fmt.Errorf("save %s: %w", dest, err)
	}
	return nil
}

// parseHex converts "#552583" or "008348" to an opaque color. Malformed
// values fall back to neutral gray so a bad feed color never aborts a
// composite.
func parseHex(raw string) color.NRGBA {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		s = fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		v, _ = strconv.ParseUint(fallbackColor, 16, 32)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
