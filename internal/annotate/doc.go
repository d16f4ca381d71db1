// Package annotate orchestrates the menu annotation pipeline.
//
// One call moves through four stages: the detector adapter produces text
// regions in pixel space, the matcher pairs dishes with regions, the layout
// engine derives the display geometry, and the renderer composites the
// annotated raster. All intermediates live and die inside the call; the
// pipeline is a pure transformation from (image, dish list) to PNG bytes and
// can run concurrently with itself.
//
// Detection is the only suspension point. The engine imposes no timeout on
// it; callers that need one bound the context they pass in.
package annotate
