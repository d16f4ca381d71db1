// Package ocr is the text region detector adapter: it wraps the external
// text recognition collaborator and normalizes its output into the uniform
// Region list the rest of the annotation pipeline consumes.
//
// # Architecture
//
// Recognizer is the collaborator port. Its contract is deliberately narrow:
// given an upright pixel buffer, return recognized strings with boxes in a
// normalized (0..1), bottom-left-origin frame, or an error. The Tesseract
// implementation satisfies this contract; tests substitute fakes.
//
// Detector sits on top of the port and owns everything the contract leaves
// out: validating the pixel buffer, applying orientation metadata before
// recognition, converting each normalized box into top-left-origin pixel
// coordinates, and mapping failures into the package's error types.
//
// # Errors
//
//   - ErrNoPixelBuffer: the input image is nil or has empty bounds.
//   - *RecognitionError: the collaborator reported a failure; the cause is
//     wrapped for display.
//
// An empty region list is success, not an error. The pipeline decides what a
// text-free photo means.
//
// # Prerequisites
//
// The Tesseract back end requires tesseract and language data installed on
// the system (tesseract-ocr and tesseract-ocr-<lang> packages on
// Debian/Ubuntu, brew install tesseract on macOS).
package ocr
