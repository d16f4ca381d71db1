package layout

// Badge padding constants, in display points.
const (
	// BadgePaddingX is added on each side of the widest badge text line.
	BadgePaddingX = 8.0

	// BadgePaddingY is the total vertical padding split above and below the
	// stacked badge text lines.
	BadgePaddingY = 12.0
)

// PlaceBadge computes the rectangle for an annotation badge anchored to a
// display-space text region.
//
// The badge sits immediately to the right of the region and is vertically
// centered on it. Its size is derived from the rendered sizes of the two text
// lines it contains (the percentage line and the category label line) plus the
// fixed padding constants.
//
// Placement is a pure function of the anchor region and text metrics: badges
// are positioned independently of one another, so two regions close together
// can produce overlapping badges. Collision avoidance, if ever wanted, belongs
// in a separate pass over the placed rectangles, not here.
func PlaceBadge(region Rect, percentText, labelText Size) Rect {
	textWidth := percentText.Width
	if labelText.Width > textWidth {
		textWidth = labelText.Width
	}

	width := textWidth + 2*BadgePaddingX
	height := percentText.Height + labelText.Height + BadgePaddingY

	return Rect{
		X:      region.MaxX(),
		Y:      region.Y + region.Height/2 - height/2,
		Width:  width,
		Height: height,
	}
}

// ClampToCanvas shifts a rectangle so it never extends past the right or
// bottom edge of the canvas, then pins it to non-negative coordinates. The
// rectangle's size is preserved; only its position moves.
func ClampToCanvas(r Rect, canvas Size) Rect {
	if r.MaxX() > canvas.Width {
		r.X = canvas.Width - r.Width
	}
	if r.MaxY() > canvas.Height {
		r.Y = canvas.Height - r.Height
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}
