package render

// Layout computes pixel placements for a square scene so both engines draw
// identical geometry. The away team owns the upper-left triangle, the home
// team the lower-right.
type Layout struct {
	Canvas int
	Logo   int
	// Inset pulls the divider endpoints off the exact corners.
	Inset int
	// VOffset shifts each logo away from the vertical center so the pair
	// sits clear of the diagonal divider.
	VOffset int
}

// NewLayout derives a Layout for the given canvas and logo box sizes.
func NewLayout(canvas, logo int) Layout {
	return Layout{
		Canvas:  canvas,
		Logo:    logo,
		Inset:   canvas / 100,
		VOffset: canvas * 12 / 100,
	}
}

// AwayLogoOffset returns the top-left placement of the away logo, centered
// in the left half and raised above the midline.
func (l Layout) AwayLogoOffset() (x, y int) {
	half := l.Canvas / 2
	return (half - l.Logo) / 2, (l.Canvas-l.Logo)/2 - l.VOffset
}

// HomeLogoOffset returns the top-left placement of the home logo, centered
// in the right half and lowered below the midline.
func (l Layout) HomeLogoOffset() (x, y int) {
	half := l.Canvas / 2
	return half + (half-l.Logo)/2, (l.Canvas-l.Logo)/2 + l.VOffset
}

// DividerEndpoints returns the anti-diagonal divider line, inset from the
// bottom-left and top-right corners.
func (l Layout) DividerEndpoints() (x1, y1, x2, y2 int) {
	return l.Inset, l.Canvas - l.Inset, l.Canvas - l.Inset, l.Inset
}

// LabelOffsetY returns the top margin for the kickoff label.
func (l Layout) LabelOffsetY() int {
	return l.Canvas * 4 / 100
}

// HomeTriangle returns the polygon vertices covering the home team's half,
// in drawing order: bottom-left, top-right, bottom-right.
func (l Layout) HomeTriangle() [3][2]int {
	return [3][2]int{
		{0, l.Canvas},
		{l.Canvas, 0},
		{l.Canvas, l.Canvas},
	}
}
