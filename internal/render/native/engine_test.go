package native

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestResizeFitsWithinBox(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	dest := filepath.Join(dir, "resized.png")
	writePNG(t, src, solidImage(80, 40, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))

	engine := New(Config{LogoSize: 20})
	if err := engine.Resize(context.Background(), src, dest); err != nil {
		t.Fatalf("expected resize to succeed, got %v", err)
	}

	out := decodePNG(t, dest)
	bounds := out.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 10 {
		t.Fatalf("expected 20x10 fit, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeMissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	engine := New(Config{})

	err := engine.Resize(context.Background(), filepath.Join(dir, "absent.png"), filepath.Join(dir, "out.png"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestRemoveBackgroundMakesNearWhiteTransparent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	dest := filepath.Join(dir, "clean.png")

	img := solidImage(60, 60, color.NRGBA{R: 245, G: 245, B: 245, A: 255})
	fillRect(img, 20, 20, 40, 40, color.NRGBA{R: 200, G: 20, B: 20, A: 255})
	writePNG(t, src, img)

	engine := New(Config{FuzzPercent: 10})
	if err := engine.RemoveBackground(context.Background(), src, dest); err != nil {
		t.Fatalf("expected clean to succeed, got %v", err)
	}

	out := decodePNG(t, dest)
	if corner := colorAt(out, 2, 2); corner.A != 0 {
		t.Fatalf("expected near-white corner to be transparent, got alpha %d", corner.A)
	}
	center := colorAt(out, 30, 30)
	if center.A != 255 || center.R != 200 {
		t.Fatalf("expected opaque red center, got %+v", center)
	}
}

func TestGlowAddsHaloAroundShape(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clean.png")
	dest := filepath.Join(dir, "glow.png")

	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fillRect(img, 30, 30, 70, 70, color.NRGBA{R: 200, G: 20, B: 20, A: 255})
	writePNG(t, src, img)

	engine := New(Config{BlurSigma: 3})
	if err := engine.Glow(context.Background(), src, dest); err != nil {
		t.Fatalf("expected glow to succeed, got %v", err)
	}

	out := decodePNG(t, dest)
	halo := colorAt(out, 27, 50)
	if halo.A == 0 {
		t.Fatal("expected halo outside the shape, got fully transparent pixel")
	}
	if halo.R < 180 || halo.G < 180 || halo.B < 180 {
		t.Fatalf("expected whitish halo, got %+v", halo)
	}
	center := colorAt(out, 50, 50)
	if center.R != 200 || center.A != 255 {
		t.Fatalf("expected shape to stay intact over the halo, got %+v", center)
	}
}

func TestEngineName(t *testing.T) {
	if got := New(Config{}).Name(); got != "native" {
		t.Fatalf("expected native, got %q", got)
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	engine := New(Config{})
	if engine.cfg.CanvasSize != 500 || engine.cfg.LogoSize != 200 {
		t.Fatalf("expected stock geometry, got %+v", engine.cfg)
	}
	if engine.cfg.FuzzPercent != 10 || engine.cfg.BlurSigma != 6.0 {
		t.Fatalf("expected stock treatment values, got %+v", engine.cfg)
	}
	if engine.cfg.StrokeWidth != 4 || engine.cfg.PointSize != 48 {
		t.Fatalf("expected stock stroke and point size, got %+v", engine.cfg)
	}
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, c)
	return img
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func colorAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
