package ocr

import (
	"errors"
	"fmt"
)

// ErrNoPixelBuffer indicates the input image had no decodable pixel buffer
// (nil image or empty bounds). Fatal to the current request; there is nothing
// to recognize.
var ErrNoPixelBuffer = errors.New("image has no decodable pixel buffer")

// RecognitionError wraps a failure reported by the text recognition
// collaborator. The cause is preserved for display to the caller.
type RecognitionError struct {
	Cause error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("text recognition failed: %v", e.Cause)
}

func (e *RecognitionError) Unwrap() error {
	return e.Cause
}
