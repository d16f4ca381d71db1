package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Orientation is the EXIF-style orientation tag carried alongside a decoded
// pixel buffer. Cameras commonly store the sensor's native pixel order and
// record how the photo should be displayed here; the annotation pipeline must
// apply it before text recognition so the recognizer's coordinate frame
// matches what the user sees, not how the pixels happen to be stored.
type Orientation int

const (
	// OrientationUp is the identity: the buffer is already displayed as stored.
	OrientationUp Orientation = 1

	OrientationUpMirrored    Orientation = 2
	OrientationDown          Orientation = 3
	OrientationDownMirrored  Orientation = 4
	OrientationLeftMirrored  Orientation = 5
	OrientationRight         Orientation = 6
	OrientationRightMirrored Orientation = 7
	OrientationLeft          Orientation = 8
)

// Valid reports whether o is one of the eight defined orientation values.
func (o Orientation) Valid() bool {
	return o >= OrientationUp && o <= OrientationLeft
}

// Apply transforms img into its visual orientation.
//
// For OrientationUp (or any unrecognized value) the image is returned
// unchanged. All other values produce a new NRGBA buffer whose storage order
// matches the displayed order, so that subsequent recognition and drawing can
// treat the buffer as upright.
func (o Orientation) Apply(img image.Image) image.Image {
	switch o {
	case OrientationUpMirrored:
		return imaging.FlipH(img)
	case OrientationDown:
		return imaging.Rotate180(img)
	case OrientationDownMirrored:
		return imaging.FlipV(img)
	case OrientationLeftMirrored:
		return imaging.Transpose(img)
	case OrientationRight:
		return imaging.Rotate270(img)
	case OrientationRightMirrored:
		return imaging.Transverse(img)
	case OrientationLeft:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
