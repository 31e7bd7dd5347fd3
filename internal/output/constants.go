package output

const (
	defaultBaseDir = "game_graphics"
	manifestName   = "manifest.json"

	manifestVersion = 1
)
