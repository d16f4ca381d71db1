// Package imaging provides image loading, orientation handling, and encoding
// for the menu annotation pipeline.
//
// All operations work with standard Go image.Image types and a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Orientation
//
// Photos arrive as a pixel buffer plus an EXIF-style orientation tag. The
// Orientation type applies that tag so the buffer's storage order matches its
// displayed order; everything downstream (recognition, matching, drawing)
// assumes an upright buffer.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are pure and
// can be called concurrently on different images.
package imaging
