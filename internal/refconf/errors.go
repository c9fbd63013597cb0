package refconf

import (
	"errors"
	"fmt"
)

// LoadError represents a fatal failure of a load: the input could not
// be acquired or went bad mid-read. Grammar mismatches and duplicate
// keys are not LoadErrors - they are absorbed by the pipeline.
type LoadError struct {
	// Code identifies the failure category.
	Code LoadErrorCode

	// Path is the input file path, empty for injected readers.
	Path string

	// Err is the underlying cause.
	Err error
}

// LoadErrorCode categorizes fatal load failures.
type LoadErrorCode string

const (
	// ErrCodeOpenFailed indicates the input file could not be opened.
	ErrCodeOpenFailed LoadErrorCode = "OPEN_FAILED"

	// ErrCodeReadFailed indicates the input stream failed mid-parse.
	ErrCodeReadFailed LoadErrorCode = "READ_FAILED"
)

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %q: %v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsOpenError reports whether err is a file-acquisition failure.
// Uses errors.As to handle wrapped errors.
func IsOpenError(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeOpenFailed
	}
	return false
}
