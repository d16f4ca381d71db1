package ocr

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/rooshmintted/menu-annotate/internal/imaging"
	"github.com/rooshmintted/menu-annotate/internal/layout"
)

// fakeRecognizer returns canned observations and records the image it saw.
type fakeRecognizer struct {
	observations []Observation
	err          error
	sawWidth     int
	sawHeight    int
}

func (f *fakeRecognizer) Recognize(_ context.Context, img image.Image) ([]Observation, error) {
	f.sawWidth = img.Bounds().Dx()
	f.sawHeight = img.Bounds().Dy()
	if f.err != nil {
		return nil, f.err
	}
	return f.observations, nil
}

func TestDetector_ConvertsNormalizedToPixel(t *testing.T) {
	rec := &fakeRecognizer{
		observations: []Observation{
			{
				Text:       "Caesar Salad",
				Box:        layout.Rect{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.25},
				Confidence: 0.92,
			},
		},
	}
	d := NewDetector(rec)

	img := image.NewRGBA(image.Rect(0, 0, 1000, 800))
	regions, err := d.Detect(context.Background(), img, imaging.OrientationUp)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	got := regions[0]
	if got.Text != "Caesar Salad" {
		t.Errorf("Text = %q", got.Text)
	}
	want := layout.Rect{X: 250, Y: 400, Width: 500, Height: 200}
	if math.Abs(got.Bounds.X-want.X) > 1e-9 || math.Abs(got.Bounds.Y-want.Y) > 1e-9 ||
		math.Abs(got.Bounds.Width-want.Width) > 1e-9 || math.Abs(got.Bounds.Height-want.Height) > 1e-9 {
		t.Errorf("Bounds = %+v, want %+v", got.Bounds, want)
	}
	if got.Confidence != 0.92 {
		t.Errorf("Confidence = %v", got.Confidence)
	}
}

func TestDetector_AppliesOrientationBeforeRecognition(t *testing.T) {
	rec := &fakeRecognizer{}
	d := NewDetector(rec)

	// Stored landscape, displayed portrait.
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	if _, err := d.Detect(context.Background(), img, imaging.OrientationRight); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if rec.sawWidth != 300 || rec.sawHeight != 400 {
		t.Errorf("recognizer saw %dx%d, want 300x400 (oriented)", rec.sawWidth, rec.sawHeight)
	}
}

func TestDetector_NoPixelBuffer(t *testing.T) {
	d := NewDetector(&fakeRecognizer{})

	if _, err := d.Detect(context.Background(), nil, imaging.OrientationUp); !errors.Is(err, ErrNoPixelBuffer) {
		t.Errorf("nil image: err = %v, want ErrNoPixelBuffer", err)
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := d.Detect(context.Background(), empty, imaging.OrientationUp); !errors.Is(err, ErrNoPixelBuffer) {
		t.Errorf("empty image: err = %v, want ErrNoPixelBuffer", err)
	}
}

func TestDetector_WrapsRecognizerFailure(t *testing.T) {
	cause := errors.New("engine exploded")
	d := NewDetector(&fakeRecognizer{err: cause})

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, err := d.Detect(context.Background(), img, imaging.OrientationUp)

	var rerr *RecognitionError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RecognitionError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not preserved through Unwrap")
	}
}

func TestDetector_DropsEmptyText(t *testing.T) {
	rec := &fakeRecognizer{
		observations: []Observation{
			{Text: "", Box: layout.Rect{Width: 0.1, Height: 0.1}},
			{Text: "Soup", Box: layout.Rect{Width: 0.1, Height: 0.1}, Confidence: 0.5},
		},
	}
	d := NewDetector(rec)

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	regions, err := d.Detect(context.Background(), img, imaging.OrientationUp)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(regions) != 1 || regions[0].Text != "Soup" {
		t.Errorf("regions = %+v, want only Soup", regions)
	}
}

func TestDetector_EmptyResultIsNotAnError(t *testing.T) {
	d := NewDetector(&fakeRecognizer{})

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	regions, err := d.Detect(context.Background(), img, imaging.OrientationUp)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(regions) != 0 {
		t.Errorf("got %d regions, want 0", len(regions))
	}
}
