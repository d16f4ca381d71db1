package ocr

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
)

// recognitionContrastBoost is applied before OCR. Menu photos are often taken
// in dim restaurant lighting; a mild boost separates print from paper without
// blowing out highlights.
const recognitionContrastBoost = 0.2

// prepareForRecognition converts a photo into the form handed to the OCR
// engine: grayscale with a mild contrast boost. Color carries no signal for
// text recognition and grayscaling removes chroma noise from the sensor.
func prepareForRecognition(img image.Image) *image.RGBA {
	gray := effect.Grayscale(img)
	return adjust.Contrast(gray, recognitionContrastBoost)
}
