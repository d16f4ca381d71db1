package render

import (
	"fmt"
	"image"

	"github.com/rooshmintted/menu-annotate/internal/layout"
	"github.com/rooshmintted/menu-annotate/internal/match"
	"github.com/rooshmintted/menu-annotate/internal/menu"
)

// Rendering constants, in display points.
const (
	cornerRadius = 8.0
	borderWidth  = 2.0

	headerTopMargin = 16.0
	headerPadding   = 10.0
	headerScale     = 2

	percentScale = 2
	labelScale   = 1

	justificationScale   = 1
	justificationPadding = 6.0
	justificationGap     = 4.0

	// wrapLimit is the greedy word-wrap character budget for justification
	// text.
	wrapLimit = 40
)

// DefaultHeader is the header label drawn when the caller does not set one.
const DefaultHeader = "Menu Margin Analysis"

// Renderer composites the annotated output raster. It holds only
// configuration, never per-request state, so one Renderer may serve
// concurrent requests.
type Renderer struct {
	// Header is the label drawn at the top of every output raster.
	Header string
}

// NewRenderer returns a renderer with the default header.
func NewRenderer() *Renderer {
	return &Renderer{Header: DefaultHeader}
}

// Render draws the annotated raster: the base image scaled to display size,
// the header, and one badge plus justification block per match, in match
// order.
//
// Matched region bounds arrive in pixel space and are remapped through geom
// before any drawing; everything below that point operates exclusively in
// display space. Rendering never fails: a rendered raster is always returned,
// and with zero matches it is simply the scaled base image with the header.
func (r *Renderer) Render(base image.Image, geom layout.DisplayGeometry, matches []match.Match) *image.RGBA {
	canvas := NewRasterCanvas(geom.Display)
	r.RenderOn(canvas, base, geom, matches)
	return canvas.Image()
}

// RenderOn performs the same composition as Render against any Canvas
// implementation.
func (r *Renderer) RenderOn(canvas Canvas, base image.Image, geom layout.DisplayGeometry, matches []match.Match) {
	canvas.DrawImage(base, layout.Rect{Width: geom.Display.Width, Height: geom.Display.Height})

	r.drawHeader(canvas)

	for _, m := range matches {
		region := geom.ScaleRect(m.Region.Bounds)
		r.drawBadge(canvas, m.Dish, region)
		r.drawJustification(canvas, m.Dish, region)
	}
}

func (r *Renderer) drawHeader(canvas Canvas) {
	header := r.Header
	if header == "" {
		header = DefaultHeader
	}

	size := canvas.MeasureText(header, headerScale)
	bg := layout.Rect{
		X:      (canvas.Size().Width - size.Width) / 2,
		Y:      headerTopMargin,
		Width:  size.Width + 2*headerPadding,
		Height: size.Height + 2*headerPadding,
	}
	bg.X -= headerPadding

	canvas.FillRoundedRect(bg, cornerRadius, headerBackground)
	canvas.DrawText(header, bg.X+headerPadding, bg.Y+headerPadding, headerScale, white)
}

func (r *Renderer) drawBadge(canvas Canvas, dish menu.DishRecord, region layout.Rect) {
	tier := menu.ClassifyMargin(dish.MarginPercentage)
	percentText := fmt.Sprintf("%d%%", dish.MarginPercentage)
	labelText := tier.Label()

	percentSize := canvas.MeasureText(percentText, percentScale)
	labelSize := canvas.MeasureText(labelText, labelScale)
	badge := layout.PlaceBadge(region, percentSize, labelSize)

	canvas.FillRoundedRect(badge, cornerRadius, TierFill(tier))
	canvas.StrokeRoundedRect(badge, cornerRadius, borderWidth, white)

	percentY := badge.Y + layout.BadgePaddingY/2
	canvas.DrawText(percentText, badge.X+(badge.Width-percentSize.Width)/2, percentY, percentScale, white)
	canvas.DrawText(labelText, badge.X+(badge.Width-labelSize.Width)/2, percentY+percentSize.Height, labelScale, white)
}

func (r *Renderer) drawJustification(canvas Canvas, dish menu.DishRecord, region layout.Rect) {
	lines := WrapText(dish.Justification, wrapLimit)
	if len(lines) == 0 {
		return
	}

	lineHeight := canvas.MeasureText(lines[0], justificationScale).Height
	maxWidth := 0.0
	for _, line := range lines {
		if w := canvas.MeasureText(line, justificationScale).Width; w > maxWidth {
			maxWidth = w
		}
	}

	block := layout.Rect{
		X:      region.X,
		Y:      region.MaxY() + justificationGap,
		Width:  maxWidth + 2*justificationPadding,
		Height: lineHeight*float64(len(lines)) + 2*justificationPadding,
	}
	block = layout.ClampToCanvas(block, canvas.Size())

	tier := menu.ClassifyMargin(dish.MarginPercentage)
	canvas.FillRoundedRect(block, cornerRadius, justificationBackground(TierFill(tier)))

	for i, line := range lines {
		y := block.Y + justificationPadding + float64(i)*lineHeight
		canvas.DrawText(line, block.X+justificationPadding, y, justificationScale, white)
	}
}
