// Package imaging provides decoded pixel buffers and the image processing error kind
// shared by the clothing and profile analysis pipelines.
package imaging

import "errors"

// ErrImageProcessing is the error kind for undecodable images, photos without a
// detectable face, and pixel data that cannot be clustered.
// Match it with errors.Is.
var ErrImageProcessing = errors.New("image processing failed")

// ProcessingError carries a message that can be shown to the user as is.
type ProcessingError struct {
	Message string
	Err     error
}

// NewProcessingError returns a ProcessingError with the given message and cause.
func NewProcessingError(message string, cause error) *ProcessingError {
	return &ProcessingError{Message: message, Err: cause}
}

func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Is makes every ProcessingError match ErrImageProcessing.
func (e *ProcessingError) Is(target error) bool {
	return target == ErrImageProcessing
}

// UserMessage returns the user-facing message of a processing error, or "" if
// err is not one.
func UserMessage(err error) string {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return ""
}
