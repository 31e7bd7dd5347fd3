package magick

const (
	defaultConvertBin  = "convert"
	defaultIdentifyBin = "identify"

	defaultCanvasSize  = 500
	defaultLogoSize    = 200
	defaultFuzzPercent = 10
	defaultBlurSigma   = 6.0
	defaultStrokeWidth = 4
	defaultPointSize   = 48
	defaultFont        = "Noto-Sans-Light"

	// fallbackFont is an ImageMagick generic alias, always resolvable.
	fallbackFont = "sans-serif"
)
