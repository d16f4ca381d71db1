package annotate

import (
	"context"
	"image"

	"github.com/rooshmintted/menu-annotate/internal/imaging"
	"github.com/rooshmintted/menu-annotate/internal/layout"
	"github.com/rooshmintted/menu-annotate/internal/match"
	"github.com/rooshmintted/menu-annotate/internal/menu"
	"github.com/rooshmintted/menu-annotate/internal/ocr"
	"github.com/rooshmintted/menu-annotate/internal/render"
)

// Detector is the port the engine detects text regions through. *ocr.Detector
// satisfies it; tests substitute fakes.
type Detector interface {
	Detect(ctx context.Context, img image.Image, orient imaging.Orientation) ([]ocr.Region, error)
}

// Request carries everything one annotation call needs. The caller supplies
// the dish list already filtered to the items it wants annotated; the engine
// performs no filtering of its own.
type Request struct {
	// Image is the decoded menu photo.
	Image image.Image

	// Orientation is the photo's orientation metadata. Zero (invalid) is
	// treated as upright.
	Orientation imaging.Orientation

	// Dishes is the ordered list of dish records to annotate.
	Dishes []menu.DishRecord

	// MaxDisplayWidth and MaxDisplayHeight bound the output raster,
	// conventionally 1.5x the viewport it will be shown in.
	MaxDisplayWidth  float64
	MaxDisplayHeight float64

	// ExclusiveMatch selects one-to-one dish/region matching instead of the
	// default per-dish independent policy.
	ExclusiveMatch bool
}

// Result is a completed annotation.
type Result struct {
	// PNG is the encoded output raster.
	PNG []byte

	// Geometry is the display mapping the raster was rendered under.
	Geometry layout.DisplayGeometry

	// Matches are the dish/region pairs that were annotated, in dish order.
	Matches []match.Match

	// RequestedDishes and AnnotatedDishes let the caller surface how many of
	// the requested dishes were actually located on the image. A shortfall
	// is informational, not an error.
	RequestedDishes int
	AnnotatedDishes int
}

// Outcome is the single message delivered on the channel returned by Go.
type Outcome struct {
	Result *Result
	Err    error
}

// Engine runs the annotation pipeline: detect text regions, match dishes to
// them, compute display geometry, render.
//
// An Engine holds configuration only. Every call operates on its own inputs
// and intermediates, so one Engine may serve concurrent requests without
// locking, provided its Detector is safe for concurrent use.
type Engine struct {
	detector Detector
	renderer *render.Renderer
}

// NewEngine creates an engine around a detector, rendering with the default
// header.
func NewEngine(detector Detector) *Engine {
	return &Engine{
		detector: detector,
		renderer: render.NewRenderer(),
	}
}

// NewEngineWithRenderer creates an engine with a custom-configured renderer.
func NewEngineWithRenderer(detector Detector, renderer *render.Renderer) *Engine {
	return &Engine{detector: detector, renderer: renderer}
}

// Annotate runs one full request and returns the annotated raster.
//
// Errors are always *Error values from this package's taxonomy. Detection
// returning zero regions is not an error: the result is the scaled base
// image with the header and AnnotatedDishes == 0.
func (e *Engine) Annotate(ctx context.Context, req Request) (*Result, error) {
	orient := req.Orientation
	if !orient.Valid() {
		orient = imaging.OrientationUp
	}

	regions, err := e.detector.Detect(ctx, req.Image, orient)
	if err != nil {
		return nil, wrapDetectError(err)
	}

	var matches []match.Match
	if req.ExclusiveMatch {
		matches = match.Exclusive(req.Dishes, regions)
	} else {
		matches = match.All(req.Dishes, regions)
	}

	oriented := orient.Apply(req.Image)
	original := layout.Size{
		Width:  float64(oriented.Bounds().Dx()),
		Height: float64(oriented.Bounds().Dy()),
	}
	geom := layout.FitDisplay(original, req.MaxDisplayWidth, req.MaxDisplayHeight)

	raster := e.renderer.Render(oriented, geom, matches)
	png, err := imaging.EncodePNG(raster)
	if err != nil {
		return nil, &Error{Code: CodeRecognitionError, Message: "failed to encode output raster", Cause: err}
	}

	return &Result{
		PNG:             png,
		Geometry:        geom,
		Matches:         matches,
		RequestedDishes: len(req.Dishes),
		AnnotatedDishes: len(matches),
	}, nil
}

// Go runs Annotate on a new goroutine and delivers the single Outcome on the
// returned channel. The channel is buffered, so the result is never lost if
// the consumer is slow to receive; the consuming layer is responsible for
// marshaling the outcome onto its own execution context (a UI thread
// equivalent must not mutate its visible state from here).
func (e *Engine) Go(ctx context.Context, req Request) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		result, err := e.Annotate(ctx, req)
		out <- Outcome{Result: result, Err: err}
		close(out)
	}()
	return out
}
