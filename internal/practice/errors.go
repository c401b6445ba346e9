package practice

import (
	"errors"
	"fmt"
)

// ErrSelectionInvariant indicates that an accepted selection code did not map
// to exactly one row of the table it was validated against. It signals a
// programming error rather than bad user input.
var ErrSelectionInvariant = errors.New("selection does not match exactly one progress row")

// PracticeError wraps errors from the practice components with the
// operation that failed, so callers can use errors.As instead of string
// matching.
type PracticeError struct {
	// Operation is the operation that failed (e.g. "build_progress", "record_answer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error
	Err error
}

// Error implements the error interface for PracticeError.
func (e *PracticeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PracticeError) Unwrap() error {
	return e.Err
}

func newPracticeError(operation, message string, err error) *PracticeError {
	return &PracticeError{Operation: operation, Message: message, Err: err}
}
