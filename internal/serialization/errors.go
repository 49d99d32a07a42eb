package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrNoParameters       = errors.New("checkpoint has no parameters")
	ErrTooManyParameters  = errors.New("too many parameters in file")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type      string // Type of error (e.g., "invalid_name")
	Parameter string // Parameter name involved, if any
	Details   string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("%s: parameter %q: %s", e.Type, e.Parameter, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
