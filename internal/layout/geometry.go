package layout

// Size represents width and height in a single coordinate space.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle with a top-left origin.
//
// X and Y locate the top-left corner; Width and Height extend rightward and
// downward. Which coordinate space a Rect lives in (pixel or display) is
// determined by how it was produced, never by the type itself.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// NormalizedToPixel converts a bounding box from the text recognizer's
// normalized coordinate frame to absolute pixel coordinates.
//
// The recognizer reports boxes in a 0..1 range with a bottom-left origin
// (Y measured upward from the bottom edge). Pixel space uses a top-left
// origin with Y increasing downward, so the Y axis is flipped:
//
//	x = normX * imageWidth
//	y = (1 - normY - normHeight) * imageHeight
//	width  = normWidth * imageWidth
//	height = normHeight * imageHeight
//
// Parameters:
//   - norm: Bounding box in normalized bottom-left coordinates.
//   - imageSize: Pixel dimensions of the image the box was detected in. The
//     image must already be in its visual orientation (orientation metadata
//     applied) or the resulting box will not line up with what the user sees.
//
// Returns the box in top-left-origin pixel coordinates.
func NormalizedToPixel(norm Rect, imageSize Size) Rect {
	return Rect{
		X:      norm.X * imageSize.Width,
		Y:      (1 - norm.Y - norm.Height) * imageSize.Height,
		Width:  norm.Width * imageSize.Width,
		Height: norm.Height * imageSize.Height,
	}
}

// PixelToNormalized is the inverse of NormalizedToPixel: it converts a
// top-left-origin pixel box into the recognizer's normalized bottom-left
// frame. Recognizer back ends that natively report pixel boxes use this to
// satisfy the normalized output contract.
func PixelToNormalized(px Rect, imageSize Size) Rect {
	if imageSize.Width == 0 || imageSize.Height == 0 {
		return Rect{}
	}
	return Rect{
		X:      px.X / imageSize.Width,
		Y:      1 - (px.Y+px.Height)/imageSize.Height,
		Width:  px.Width / imageSize.Width,
		Height: px.Height / imageSize.Height,
	}
}

// DisplayGeometry captures the mapping between the original image's pixel
// space and the display space everything is rendered in.
//
// A DisplayGeometry is derived once per annotation request and never mutated;
// all drawing happens in display space after regions are remapped through it.
type DisplayGeometry struct {
	Original Size    `json:"original"`
	Display  Size    `json:"display"`
	ScaleX   float64 `json:"scale_x"`
	ScaleY   float64 `json:"scale_y"`
}

// FitDisplay computes the display size for an image under a device-display
// bound, preserving aspect ratio.
//
// If the image already fits within (maxWidth, maxHeight) it is not scaled.
// Otherwise the limiting dimension is chosen by comparing aspect ratios: when
// the image is proportionally wider than the bound, width limits
// (displayWidth = maxWidth); otherwise height limits. Images are never
// scaled up.
//
// Parameters:
//   - original: Pixel dimensions of the source image. Must be non-zero.
//   - maxWidth, maxHeight: The display bound, conventionally 1.5x the
//     viewport the raster will be shown in.
func FitDisplay(original Size, maxWidth, maxHeight float64) DisplayGeometry {
	display := original

	if original.Width > maxWidth || original.Height > maxHeight {
		aspect := original.Width / original.Height
		if aspect > maxWidth/maxHeight {
			// Width-limited
			display = Size{Width: maxWidth, Height: maxWidth / aspect}
		} else {
			// Height-limited
			display = Size{Width: maxHeight * aspect, Height: maxHeight}
		}
	}

	return DisplayGeometry{
		Original: original,
		Display:  display,
		ScaleX:   display.Width / original.Width,
		ScaleY:   display.Height / original.Height,
	}
}

// ScaleRect remaps a pixel-space rectangle into display space by multiplying
// each coordinate and dimension by the corresponding scale factor.
func (g DisplayGeometry) ScaleRect(r Rect) Rect {
	return Rect{
		X:      r.X * g.ScaleX,
		Y:      r.Y * g.ScaleY,
		Width:  r.Width * g.ScaleX,
		Height: r.Height * g.ScaleY,
	}
}
