package native

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelDrawer resolves the annotation face once and reuses it across games.
type labelDrawer struct {
	fontFile string
	points   int

	once sync.Once
	face font.Face
}

func newLabelDrawer(fontFile string, points int) *labelDrawer {
	return &labelDrawer{fontFile: fontFile, points: points}
}

func (d *labelDrawer) resolveFace() font.Face {
	d.once.Do(func() {
		d.face = basicfont.Face7x13
		if d.fontFile == "" {
			return
		}
		data, err := os.ReadFile(d.fontFile)
		if err != nil {
			return
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			return
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    float64(d.points),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return
		}
		d.face = face
	})
	return d.face
}

// Annotate draws the kickoff label in white, centered near the top of the
// scene, and writes the result to dest.
func (e *Engine) Annotate(ctx context.Context, src, dest, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}

	out := imaging.Clone(img)
	face := e.label.resolveFace()
	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.White,
		Face: face,
	}

	width := drawer.MeasureString(label)
	bounds := out.Bounds()
	baseline := fixed.I(e.layout.LabelOffsetY()) + face.Metrics().Ascent
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(bounds.Dx()) - width) / 2,
		Y: baseline,
	}
	drawer.DrawString(label)

	if err := imaging.Save(out, dest); err != nil {
		return fmt.Errorf("save %s: %w", dest, err)
	}
	return nil
}
