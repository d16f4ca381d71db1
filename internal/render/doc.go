// Package render composites the annotated output raster.
//
// The Renderer draws in a fixed, deterministic order: base image, header,
// then per-match badge and justification block in matcher output order.
// Identical inputs always produce byte-identical rasters: the bitmap text
// face, nearest-neighbor text scaling, and hard-edged rounded-rect masks
// were all chosen to keep every draw free of platform- or float-dependent
// anti-aliasing.
//
// Drawing goes through the Canvas capability interface; RasterCanvas is the
// in-memory RGBA implementation. The renderer never returns an error: a dish
// whose region could not be computed was already excluded upstream by the
// matcher, and everything that reaches Render gets drawn.
package render
