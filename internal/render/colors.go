package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rooshmintted/menu-annotate/internal/menu"
)

// Badge fill colors per margin tier. Text on every tier is white; these fills
// were picked dark enough for that to hold.
var (
	highMarginFill   = color.NRGBA{R: 220, G: 53, B: 69, A: 255} // red
	mediumMarginFill = color.NRGBA{R: 255, G: 140, B: 0, A: 255} // orange
	lowMarginFill    = color.NRGBA{R: 40, G: 167, B: 69, A: 255} // green
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// headerBackground sits behind the header text; opaque for legibility over
// any photo.
var headerBackground = color.NRGBA{R: 33, G: 37, B: 41, A: 255}

// TierFill returns the badge fill color for a margin tier.
func TierFill(tier menu.MarginTier) color.NRGBA {
	switch tier {
	case menu.MarginHigh:
		return highMarginFill
	case menu.MarginMedium:
		return mediumMarginFill
	default:
		return lowMarginFill
	}
}

// justificationBackground derives the semi-transparent backdrop for a dish's
// justification text from its tier fill: the fill darkened in HSL space, at
// partial alpha, so the block reads as belonging to its badge while the menu
// stays visible through it.
func justificationBackground(fill color.NRGBA) color.NRGBA {
	c, ok := colorful.MakeColor(color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 255})
	if !ok {
		return color.NRGBA{A: 200}
	}
	h, s, l := c.Hsl()
	darkened := colorful.Hsl(h, s, l*0.35).Clamped()
	r, g, b := darkened.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 200}
}
