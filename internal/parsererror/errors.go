// Package parsererror defines the typed errors shared by the ledger and its input validation.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when the ledger file does not exist yet
var ErrNotInitialized = errors.New("ledger file not initialized")

// ParseError represents a stored value that could not be parsed while loading a file
type ParseError struct {
	FilePath string
	Line     int
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: failed to parse %s='%s': %v",
		e.FilePath, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents user input rejected at the presentation boundary
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
