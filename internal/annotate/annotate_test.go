package annotate

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rooshmintted/menu-annotate/internal/imaging"
	"github.com/rooshmintted/menu-annotate/internal/layout"
	"github.com/rooshmintted/menu-annotate/internal/menu"
	"github.com/rooshmintted/menu-annotate/internal/ocr"
)

type stubDetector struct {
	regions []ocr.Region
	err     error
	calls   int
}

func (s *stubDetector) Detect(_ context.Context, img image.Image, orient imaging.Orientation) ([]ocr.Region, error) {
	s.calls++
	if img == nil {
		return nil, ocr.ErrNoPixelBuffer
	}
	return s.regions, s.err
}

func menuPhoto() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func testDishes() []menu.DishRecord {
	return []menu.DishRecord{
		{ID: "1", Name: "Caesar Salad", Price: "$14.00", MarginPercentage: 80, Justification: "Greens are cheap."},
		{ID: "2", Name: "Beef Wellington", Price: "$52.00", MarginPercentage: 40, Justification: "Pastry labor eats the margin."},
	}
}

func testRegions() []ocr.Region {
	return []ocr.Region{
		{Text: "caesar salad", Bounds: layout.Rect{X: 40, Y: 100, Width: 200, Height: 30}, Confidence: 0.9},
		{Text: "desserts", Bounds: layout.Rect{X: 40, Y: 400, Width: 150, Height: 30}, Confidence: 0.8},
	}
}

func TestAnnotate_HappyPath(t *testing.T) {
	engine := NewEngine(&stubDetector{regions: testRegions()})

	result, err := engine.Annotate(context.Background(), Request{
		Image:            menuPhoto(),
		Dishes:           testDishes(),
		MaxDisplayWidth:  600,
		MaxDisplayHeight: 900,
	})
	require.NoError(t, err)

	require.Equal(t, 2, result.RequestedDishes)
	require.Equal(t, 1, result.AnnotatedDishes)
	require.Len(t, result.Matches, 1)
	require.Equal(t, "Caesar Salad", result.Matches[0].Dish.Name)
	require.NotEmpty(t, result.PNG)

	// Output raster decodes to the display size.
	img, err := imaging.DecodeBytes(result.PNG)
	require.NoError(t, err)
	require.Equal(t, 600, img.Bounds().Dx())
	require.Equal(t, 450, img.Bounds().Dy())
	require.InDelta(t, 0.75, result.Geometry.ScaleX, 1e-9)
}

func TestAnnotate_NoTextDetectedRendersHeaderOnly(t *testing.T) {
	engine := NewEngine(&stubDetector{})

	result, err := engine.Annotate(context.Background(), Request{
		Image:            menuPhoto(),
		Dishes:           testDishes(),
		MaxDisplayWidth:  600,
		MaxDisplayHeight: 900,
	})
	require.NoError(t, err, "empty detection is degraded, not fatal")
	require.Equal(t, 0, result.AnnotatedDishes)
	require.Empty(t, result.Matches)
	require.NotEmpty(t, result.PNG)
}

func TestAnnotate_DetectionFailed(t *testing.T) {
	engine := NewEngine(&stubDetector{})

	_, err := engine.Annotate(context.Background(), Request{
		Image:            nil,
		Dishes:           testDishes(),
		MaxDisplayWidth:  600,
		MaxDisplayHeight: 900,
	})
	require.Error(t, err)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, CodeDetectionFailed, aerr.Code)
	require.ErrorIs(t, err, ocr.ErrNoPixelBuffer)
}

func TestAnnotate_RecognitionError(t *testing.T) {
	cause := errors.New("tesseract crashed")
	engine := NewEngine(&stubDetector{err: &ocr.RecognitionError{Cause: cause}})

	_, err := engine.Annotate(context.Background(), Request{
		Image:            menuPhoto(),
		Dishes:           testDishes(),
		MaxDisplayWidth:  600,
		MaxDisplayHeight: 900,
	})
	require.Error(t, err)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, CodeRecognitionError, aerr.Code)
	require.ErrorIs(t, err, cause)
}

func TestAnnotate_Idempotent(t *testing.T) {
	engine := NewEngine(&stubDetector{regions: testRegions()})
	req := Request{
		Image:            menuPhoto(),
		Dishes:           testDishes(),
		MaxDisplayWidth:  600,
		MaxDisplayHeight: 900,
	}

	first, err := engine.Annotate(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.Annotate(context.Background(), req)
	require.NoError(t, err)

	require.True(t, bytes.Equal(first.PNG, second.PNG), "identical inputs must produce pixel-identical rasters")
}

func TestAnnotate_ExclusiveMode(t *testing.T) {
	dishes := []menu.DishRecord{
		{ID: "1", Name: "House Salad", MarginPercentage: 55},
		{ID: "2", Name: "Caesar Salad", MarginPercentage: 80},
	}
	regions := []ocr.Region{
		{Text: "salad", Bounds: layout.Rect{X: 40, Y: 100, Width: 200, Height: 30}},
	}
	engine := NewEngine(&stubDetector{regions: regions})

	shared, err := engine.Annotate(context.Background(), Request{
		Image: menuPhoto(), Dishes: dishes, MaxDisplayWidth: 600, MaxDisplayHeight: 900,
	})
	require.NoError(t, err)
	require.Equal(t, 2, shared.AnnotatedDishes, "default policy lets both dishes claim the region")

	exclusive, err := engine.Annotate(context.Background(), Request{
		Image: menuPhoto(), Dishes: dishes, MaxDisplayWidth: 600, MaxDisplayHeight: 900,
		ExclusiveMatch: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, exclusive.AnnotatedDishes)
	require.Equal(t, "House Salad", exclusive.Matches[0].Dish.Name, "tied scores claim in dish order")
}

func TestGo_DeliversSingleOutcome(t *testing.T) {
	engine := NewEngine(&stubDetector{regions: testRegions()})

	out := engine.Go(context.Background(), Request{
		Image:            menuPhoto(),
		Dishes:           testDishes(),
		MaxDisplayWidth:  600,
		MaxDisplayHeight: 900,
	})

	outcome := <-out
	require.NoError(t, outcome.Err)
	require.NotNil(t, outcome.Result)
	require.Equal(t, 1, outcome.Result.AnnotatedDishes)

	_, open := <-out
	require.False(t, open, "channel closes after the single outcome")
}

func TestAnnotate_ConcurrentCalls(t *testing.T) {
	engine := NewEngine(&stubDetector{regions: testRegions()})
	req := Request{
		Image:            menuPhoto(),
		Dishes:           testDishes(),
		MaxDisplayWidth:  600,
		MaxDisplayHeight: 900,
	}

	const n = 8
	results := make(chan Outcome, n)
	for i := 0; i < n; i++ {
		go func() {
			r, err := engine.Annotate(context.Background(), req)
			results <- Outcome{Result: r, Err: err}
		}()
	}

	var reference []byte
	for i := 0; i < n; i++ {
		o := <-results
		require.NoError(t, o.Err)
		if reference == nil {
			reference = o.Result.PNG
		} else {
			require.True(t, bytes.Equal(reference, o.Result.PNG))
		}
	}
}
