package app

import (
	"log/slog"

	"matchday-graphics/internal/config"
	"matchday-graphics/internal/logging"
	"matchday-graphics/internal/render"
	"matchday-graphics/internal/render/magick"
	"matchday-graphics/internal/render/native"
)

// buildEngine selects the render engine. "auto" prefers ImageMagick when
// the convert binary is installed and falls back to the in-process
// renderer otherwise.
func buildEngine(cfg config.RenderConfig, logger *slog.Logger) render.Engine {
	engine := resolveEngine(cfg)
	logging.Info(logger, "render engine selected", slog.String(logging.FieldRenderer, engine.Name()))
	return engine
}

func resolveEngine(cfg config.RenderConfig) render.Engine {
	switch cfg.Engine {
	case "native":
		return newNativeEngine(cfg)
	case "magick":
		return newMagickEngine(cfg)
	default:
		if magick.Available() {
			return newMagickEngine(cfg)
		}
		return newNativeEngine(cfg)
	}
}

func newMagickEngine(cfg config.RenderConfig) *magick.Engine {
	return magick.New(magick.Config{
		CanvasSize:  cfg.CanvasSize,
		LogoSize:    cfg.LogoSize,
		FuzzPercent: cfg.FuzzPercent,
		BlurSigma:   cfg.BlurSigma,
		StrokeWidth: cfg.StrokeWidth,
		PointSize:   cfg.PointSize,
		Font:        cfg.Font,
	})
}

func newNativeEngine(cfg config.RenderConfig) *native.Engine {
	return native.New(native.Config{
		CanvasSize:  cfg.CanvasSize,
		LogoSize:    cfg.LogoSize,
		FuzzPercent: cfg.FuzzPercent,
		BlurSigma:   cfg.BlurSigma,
		StrokeWidth: cfg.StrokeWidth,
		PointSize:   cfg.PointSize,
		FontFile:    cfg.FontFile,
	})
}
