package annotate

import (
	"errors"
	"fmt"

	"github.com/rooshmintted/menu-annotate/internal/ocr"
)

// Code identifies the failure class of an annotation request.
type Code string

const (
	// CodeDetectionFailed: the input had no usable pixel buffer. Fatal to
	// the request, no retry.
	CodeDetectionFailed Code = "DETECTION_FAILED"

	// CodeRecognitionError: the text recognition collaborator reported a
	// failure. Fatal to the request; the cause is surfaced for display.
	CodeRecognitionError Code = "RECOGNITION_ERROR"
)

// Error is the structured failure returned by the pipeline. Detection
// succeeding with zero regions is deliberately not represented here: that is
// a degraded-but-valid outcome and the pipeline renders through it.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// wrapDetectError classifies a detector failure into the pipeline taxonomy.
func wrapDetectError(err error) *Error {
	if errors.Is(err, ocr.ErrNoPixelBuffer) {
		return &Error{
			Code:    CodeDetectionFailed,
			Message: "image has no decodable pixel buffer",
			Cause:   err,
		}
	}
	var rerr *ocr.RecognitionError
	if errors.As(err, &rerr) {
		return &Error{
			Code:    CodeRecognitionError,
			Message: "text recognition failed",
			Cause:   rerr.Cause,
		}
	}
	return &Error{
		Code:    CodeRecognitionError,
		Message: "text detection failed",
		Cause:   err,
	}
}
