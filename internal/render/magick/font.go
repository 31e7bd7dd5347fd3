package magick

import (
	"context"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// fontFace resolves the label font once per engine: the configured face
// when identify lists it, the generic fallback otherwise.
func (e *Engine) fontFace(ctx context.Context) string {
	e.fontOnce.Do(func() {
		e.font = fallbackFont
		listing, err := e.run.output(ctx, e.cfg.IdentifyBin, "-list", "font")
		if err != nil {
			return
		}
		if name, ok := matchFont(listing, e.cfg.Font); ok {
			e.font = name
		}
	})
	return e.font
}

// matchFont scans identify -list font output for the requested face and
// returns the installed name. Face naming varies across ImageMagick
// builds, so a normalized fuzzy match backs up the exact comparison.
func matchFont(listing, face string) (string, bool) {
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Font:") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(line, "Font:"))
		if name == "" {
			continue
		}
		if strings.EqualFold(name, face) ||
			fuzzy.MatchNormalizedFold(face, name) ||
			fuzzy.MatchNormalizedFold(name, face) {
			return name, true
		}
	}
	return "", false
}
