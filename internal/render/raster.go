package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rooshmintted/menu-annotate/internal/layout"
)

// textFace is the base bitmap face for all canvas text. Being a fixed bitmap
// font it renders identically on every platform, which keeps the output
// raster deterministic.
var textFace = basicfont.Face7x13

// RasterCanvas implements Canvas on an in-memory RGBA raster.
type RasterCanvas struct {
	img *image.RGBA
}

// NewRasterCanvas allocates a transparent canvas of the given size.
// Fractional sizes are rounded up so content at the far edges is never
// truncated.
func NewRasterCanvas(size layout.Size) *RasterCanvas {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	return &RasterCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the underlying raster.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions.
func (c *RasterCanvas) Size() layout.Size {
	b := c.img.Bounds()
	return layout.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// DrawImage scales img to dst's size with Lanczos resampling and composites
// it at dst's position.
func (c *RasterCanvas) DrawImage(img image.Image, dst layout.Rect) {
	w := int(math.Round(dst.Width))
	h := int(math.Round(dst.Height))
	if w <= 0 || h <= 0 {
		return
	}
	scaled := image.Image(img)
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		scaled = imaging.Resize(img, w, h, imaging.Lanczos)
	}
	x := int(math.Round(dst.X))
	y := int(math.Round(dst.Y))
	draw.Draw(c.img, image.Rect(x, y, x+w, y+h), scaled, scaled.Bounds().Min, draw.Over)
}

// FillRoundedRect fills a rounded rectangle, blending the color's alpha over
// existing content.
func (c *RasterCanvas) FillRoundedRect(r layout.Rect, radius float64, col color.Color) {
	w := int(math.Round(r.Width))
	h := int(math.Round(r.Height))
	if w <= 0 || h <= 0 {
		return
	}
	x := int(math.Round(r.X))
	y := int(math.Round(r.Y))

	mask := roundedMask(w, h, radius)
	draw.DrawMask(c.img, image.Rect(x, y, x+w, y+h),
		image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

// StrokeRoundedRect draws a rounded outline just inside r by subtracting an
// inset rounded mask from the full one.
func (c *RasterCanvas) StrokeRoundedRect(r layout.Rect, radius, width float64, col color.Color) {
	w := int(math.Round(r.Width))
	h := int(math.Round(r.Height))
	if w <= 0 || h <= 0 || width <= 0 {
		return
	}
	x := int(math.Round(r.X))
	y := int(math.Round(r.Y))
	inset := int(math.Round(width))

	outer := roundedMask(w, h, radius)
	if w > 2*inset && h > 2*inset {
		inner := roundedMask(w-2*inset, h-2*inset, math.Max(0, radius-width))
		for iy := 0; iy < h-2*inset; iy++ {
			for ix := 0; ix < w-2*inset; ix++ {
				if inner.AlphaAt(ix, iy).A == 0xff {
					outer.SetAlpha(ix+inset, iy+inset, color.Alpha{A: 0})
				}
			}
		}
	}

	draw.DrawMask(c.img, image.Rect(x, y, x+w, y+h),
		image.NewUniform(col), image.Point{}, outer, image.Point{}, draw.Over)
}

// DrawText draws one line of text with its top-left corner at (x, y).
//
// Scale 1 renders the base 7x13 face directly. Larger scales render into a
// transparent staging buffer and block-scale it with nearest-neighbor
// resampling, which preserves the crisp bitmap edges and stays deterministic.
func (c *RasterCanvas) DrawText(text string, x, y float64, scale int, col color.Color) {
	if text == "" {
		return
	}
	if scale < 1 {
		scale = 1
	}

	base := c.measureBase(text)
	staging := image.NewRGBA(image.Rect(0, 0, base.Width, base.Height))
	d := &font.Drawer{
		Dst:  staging,
		Src:  image.NewUniform(col),
		Face: textFace,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(textFace.Ascent)},
	}
	d.DrawString(text)

	glyphs := image.Image(staging)
	if scale > 1 {
		glyphs = imaging.Resize(staging, base.Width*scale, base.Height*scale, imaging.NearestNeighbor)
	}

	px := int(math.Round(x))
	py := int(math.Round(y))
	gb := glyphs.Bounds()
	draw.Draw(c.img, image.Rect(px, py, px+gb.Dx(), py+gb.Dy()),
		glyphs, gb.Min, draw.Over)
}

// MeasureText returns the rendered size of one line of text at the given
// scale.
func (c *RasterCanvas) MeasureText(text string, scale int) layout.Size {
	if scale < 1 {
		scale = 1
	}
	base := c.measureBase(text)
	return layout.Size{
		Width:  float64(base.Width * scale),
		Height: float64(base.Height * scale),
	}
}

type baseMetrics struct {
	Width  int
	Height int
}

func (c *RasterCanvas) measureBase(text string) baseMetrics {
	advance := font.MeasureString(textFace, text)
	return baseMetrics{Width: advance.Ceil(), Height: textFace.Height}
}

// roundedMask builds an alpha mask for a w x h rounded rectangle. Pixels are
// fully opaque inside the shape and fully transparent outside; no
// anti-aliasing, so repeated renders are byte-identical.
func roundedMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	maxRadius := math.Min(float64(w), float64(h)) / 2
	if radius > maxRadius {
		radius = maxRadius
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if insideRounded(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h), radius) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

func insideRounded(px, py, w, h, radius float64) bool {
	if radius <= 0 {
		return true
	}
	// Corner centers
	var cx, cy float64
	switch {
	case px < radius && py < radius:
		cx, cy = radius, radius
	case px > w-radius && py < radius:
		cx, cy = w-radius, radius
	case px < radius && py > h-radius:
		cx, cy = radius, h-radius
	case px > w-radius && py > h-radius:
		cx, cy = w-radius, h-radius
	default:
		return true
	}
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= radius*radius
}
