package config

const (
	defaultRenderEngine = "auto"
	defaultCanvasSize   = 500
	defaultLogoSize     = 200
	defaultFuzzPercent  = 10
	defaultBlurSigma    = 6.0
	defaultStrokeWidth  = 4
	defaultPointSize    = 48
	defaultFont         = "Noto-Sans-Light"
)

// RenderConfig controls graphic geometry and the rendering engine.
type RenderConfig struct {
	// Engine selects the renderer: "magick", "native", or "auto" to use
	// ImageMagick when the convert binary is on PATH.
	Engine      string  `mapstructure:"engine"`
	CanvasSize  int     `mapstructure:"canvas_size"`
	LogoSize    int     `mapstructure:"logo_size"`
	FuzzPercent int     `mapstructure:"fuzz_percent"`
	BlurSigma   float64 `mapstructure:"blur_sigma"`
	StrokeWidth int     `mapstructure:"stroke_width"`
	PointSize   int     `mapstructure:"point_size"`
	// Font is the ImageMagick face for kickoff labels.
	Font string `mapstructure:"font"`
	// FontFile points the native renderer at a TTF/OTF file; empty falls
	// back to a built-in face.
	FontFile string `mapstructure:"font_file"`
}

func normalizeRender(cfg *RenderConfig) {
	if cfg.Engine == "" {
		cfg.Engine = defaultRenderEngine
	}
	if cfg.CanvasSize <= 0 {
		cfg.CanvasSize = defaultCanvasSize
	}
	if cfg.LogoSize <= 0 || cfg.LogoSize > cfg.CanvasSize {
		cfg.LogoSize = defaultLogoSize
	}
	if cfg.FuzzPercent <= 0 || cfg.FuzzPercent > 100 {
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
}
