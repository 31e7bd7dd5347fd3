package native

const (
	defaultCanvasSize  = 500
	defaultLogoSize    = 200
	defaultFuzzPercent = 10
	defaultBlurSigma   = 6.0
	defaultStrokeWidth = 4
	defaultPointSize   = 48

	// fallbackColor fills the canvas when a team color fails to parse.
	fallbackColor = "CCCCCC"
)
