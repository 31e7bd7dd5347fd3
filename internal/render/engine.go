package render

import "context"

// Scene describes the final composite: the split-color canvas plus the two
// treated logos to place on it.
type Scene struct {
	AwayColor    string
	HomeColor    string
	AwayLogoPath string
	HomeLogoPath string
}

// Engine is the image-processing capability used to build game graphics.
// Every operation works on files so intermediate artifacts can be swept
// per game regardless of which engine produced them.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string
	// Resize fits src into the engine's configured logo box.
	Resize(ctx context.Context, src, dest string) error
	// RemoveBackground replaces near-white pixels with transparency.
	RemoveBackground(ctx context.Context, src, dest string) error
	// Glow layers a blurred white silhouette of src's alpha behind it.
	Glow(ctx context.Context, src, dest string) error
	// Composite draws the divided canvas and both logos, writing dest.
	Composite(ctx context.Context, scene Scene, dest string) error
	// Annotate writes src to dest with the kickoff label drawn top-center.
	Annotate(ctx context.Context, src, dest, label string) error
}
