package render

import (
	"image"
	"image/color"

	"github.com/rooshmintted/menu-annotate/internal/layout"
)

// Canvas is the capability interface the renderer draws against. It keeps the
// composition logic portable across graphics back ends: the raster
// implementation in this package draws into an in-memory RGBA buffer, and
// tests can substitute a recording canvas.
//
// All coordinates are display-space points with a top-left origin. Text is
// positioned by the top-left corner of its bounding box, not the baseline,
// and sized by an integer scale factor over the base bitmap face (scale 1 is
// small label text, scale 2 is the large badge/header size).
type Canvas interface {
	// Size returns the canvas dimensions.
	Size() layout.Size

	// DrawImage scales img to dst's size and composites it at dst's position.
	DrawImage(img image.Image, dst layout.Rect)

	// FillRoundedRect fills a rounded rectangle. The color's alpha is
	// respected, so translucent fills blend over existing content.
	FillRoundedRect(r layout.Rect, radius float64, c color.Color)

	// StrokeRoundedRect draws a rounded rectangle outline of the given
	// stroke width just inside r.
	StrokeRoundedRect(r layout.Rect, radius, width float64, c color.Color)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(text string, x, y float64, scale int, c color.Color)

	// MeasureText returns the rendered size of a single line of text at the
	// given scale.
	MeasureText(text string, scale int) layout.Size
}
