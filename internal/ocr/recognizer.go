package ocr

import (
	"context"
	"image"

	"github.com/rooshmintted/menu-annotate/internal/layout"
)

// Observation is one recognized string as reported by the text recognition
// collaborator.
//
// Box is in the collaborator's native frame: coordinates normalized to 0..1
// with a bottom-left origin (Y measured upward from the bottom edge). The
// detector adapter is responsible for converting observations into pixel
// space; nothing outside this package should consume an Observation directly.
type Observation struct {
	Text       string
	Box        layout.Rect
	Confidence float64
}

// Recognizer is the capability interface for the external text recognition
// collaborator.
//
// Implementations receive a pixel buffer already normalized to its visual
// orientation and return one observation per recognized text line.
// Recognition should favor accuracy over speed and must not apply automatic
// language correction: menu dish names are frequently not dictionary words,
// and a "corrected" string can no longer be matched against the dish list.
//
// Implementations must be safe for concurrent use if the detector wrapping
// them is shared between concurrent annotation requests.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) ([]Observation, error)
}
