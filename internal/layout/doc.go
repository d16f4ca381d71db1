// Package layout implements the coordinate and layout engine for menu
// annotation.
//
// Three coordinate spaces meet here:
//
//   - Recognizer-normalized: 0..1 range, bottom-left origin, Y measured
//     upward. This is what the text recognition collaborator reports.
//   - Pixel: absolute coordinates of the original image, top-left origin.
//   - Display: pixel coordinates of the rendering canvas, which may be
//     scaled down from the original image under a device-display bound.
//
// NormalizedToPixel moves boxes from the first space to the second;
// DisplayGeometry.ScaleRect moves them from the second to the third. All
// badge and text-block placement operates exclusively in display space.
//
// Every function in this package is pure: no state is held between calls and
// nothing is mutated in place.
package layout
