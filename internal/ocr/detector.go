package ocr

import (
	"context"
	"image"

	"github.com/rooshmintted/menu-annotate/internal/imaging"
	"github.com/rooshmintted/menu-annotate/internal/layout"
)

// Region is a detected text region in pixel space of the oriented image, with
// a top-left origin. This is the uniform shape all downstream stages (matcher,
// layout, renderer) consume.
type Region struct {
	// Text is the recognized text content of the region.
	Text string `json:"text"`

	// Bounds is the region's bounding box in pixel coordinates of the
	// original image after orientation has been applied.
	Bounds layout.Rect `json:"bounds"`

	// Confidence is the recognizer's confidence score (0.0 to 1.0). It is
	// informational; matching is gated on string similarity, not confidence.
	Confidence float64 `json:"confidence"`
}

// Detector adapts the text recognition collaborator's output into the
// pipeline's uniform Region list.
//
// The adapter owns two obligations the rest of the pipeline relies on:
//
//  1. Orientation: the pixel buffer is normalized to its visual orientation
//     before recognition, so the collaborator's coordinate frame lines up
//     with what the user sees rather than the raw storage order.
//  2. Coordinate conversion: the collaborator reports boxes normalized to
//     0..1 with a bottom-left origin; every box is converted to absolute
//     top-left-origin pixel coordinates before being returned.
//
// A Detector holds no per-request state and is safe for concurrent use
// whenever its Recognizer is.
type Detector struct {
	rec Recognizer
}

// NewDetector wraps a recognizer in the adapter.
func NewDetector(rec Recognizer) *Detector {
	return &Detector{rec: rec}
}

// Detect runs text recognition on img and returns detected regions in pixel
// space.
//
// Parameters:
//   - ctx: Cancels or bounds the recognition call. The adapter itself imposes
//     no timeout.
//   - img: The decoded photo. Must have a non-empty pixel buffer.
//   - orient: The photo's orientation metadata; applied before recognition.
//
// Returns ErrNoPixelBuffer when img is nil or has empty bounds, and a
// *RecognitionError wrapping the collaborator's failure when recognition
// fails. An empty region list with a nil error is a valid outcome (no text in
// the photo) and is not an error here.
func (d *Detector) Detect(ctx context.Context, img image.Image, orient imaging.Orientation) ([]Region, error) {
	if img == nil {
		return nil, ErrNoPixelBuffer
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, ErrNoPixelBuffer
	}

	oriented := orient.Apply(img)
	size := layout.Size{
		Width:  float64(oriented.Bounds().Dx()),
		Height: float64(oriented.Bounds().Dy()),
	}

	observations, err := d.rec.Recognize(ctx, oriented)
	if err != nil {
		return nil, &RecognitionError{Cause: err}
	}

	regions := make([]Region, 0, len(observations))
	for _, obs := range observations {
		if obs.Text == "" {
			continue
		}
		regions = append(regions, Region{
			Text:       obs.Text,
			Bounds:     layout.NormalizedToPixel(obs.Box, size),
			Confidence: obs.Confidence,
		})
	}

	return regions, nil
}
