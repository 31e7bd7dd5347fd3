package config

// OutputConfig controls where graphics land on disk.
type OutputConfig struct {
	// BaseDir is the root directory; runs write to BaseDir/<date>/<league>/.
	BaseDir string `mapstructure:"base_dir"`
	// Manifest toggles writing manifest.json alongside each date directory.
	Manifest bool `mapstructure:"manifest"`
}
