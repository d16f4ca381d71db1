package ocr

import (
	"context"
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"

	"github.com/rooshmintted/menu-annotate/internal/imaging"
	"github.com/rooshmintted/menu-annotate/internal/layout"
)

// TesseractRecognizer implements Recognizer using the Tesseract OCR engine
// via gosseract.
//
// Tesseract must be installed on the system along with language data for the
// configured language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Recognition Settings
//
// The recognizer is tuned for menu photos:
//   - Automatic page segmentation, which copes with multi-column menus.
//   - Dictionary correction disabled (load_system_dawg/load_freq_dawg off):
//     dish names are often coined words, and letting Tesseract "fix" them
//     into dictionary words breaks matching against the dish list.
//   - Line-level bounding boxes (RIL_TEXTLINE), since a dish name is a line
//     on the menu, not a single word.
//
// # Concurrency
//
// Each Recognize call creates and closes its own gosseract client, so a
// single TesseractRecognizer is safe for concurrent use.
type TesseractRecognizer struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string
}

// NewTesseractRecognizer returns a recognizer for the given Tesseract
// language code. An empty language defaults to "eng".
func NewTesseractRecognizer(language string) *TesseractRecognizer {
	if language == "" {
		language = "eng"
	}
	return &TesseractRecognizer{Language: language}
}

// Recognize runs OCR on img and returns one observation per recognized text
// line, with boxes in the normalized bottom-left frame of the Recognizer
// contract.
//
// The image is preprocessed (grayscale + contrast boost) before recognition;
// this favors accuracy on photographed menus at the cost of speed, which is
// the right trade for a single per-user-action call.
func (r *TesseractRecognizer) Recognize(ctx context.Context, img image.Image) ([]Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prepared, err := imaging.EncodePNG(prepareForRecognition(img))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	// Disable dictionary-based correction; dish names are not dictionary words.
	if err := client.SetVariable(gosseract.SettableVariable("load_system_dawg"), "F"); err != nil {
		return nil, fmt.Errorf("failed to disable system dawg: %w", err)
	}
	if err := client.SetVariable(gosseract.SettableVariable("load_freq_dawg"), "F"); err != nil {
		return nil, fmt.Errorf("failed to disable frequency dawg: %w", err)
	}

	if err := client.SetImageFromBytes(prepared); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	size := layout.Size{
		Width:  float64(img.Bounds().Dx()),
		Height: float64(img.Bounds().Dy()),
	}

	observations := make([]Observation, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		px := layout.Rect{
			X:      float64(box.Box.Min.X),
			Y:      float64(box.Box.Min.Y),
			Width:  float64(box.Box.Dx()),
			Height: float64(box.Box.Dy()),
		}
		observations = append(observations, Observation{
			Text:       box.Word,
			Box:        layout.PixelToNormalized(px, size),
			Confidence: float64(box.Confidence) / 100.0,
		})
	}

	return observations, nil
}
