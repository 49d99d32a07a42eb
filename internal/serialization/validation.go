package serialization

import (
	"fmt"
	"strings"
)

// Limits applied when reading untrusted checkpoints.
const (
	MaxParameterCount   = 1 << 20
	MaxParameterNameLen = 256
)

// ValidateParameterName rejects empty, oversized or control-character names.
func ValidateParameterName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty parameter name"}
	}
	if len(name) > MaxParameterNameLen {
		return &ValidationError{
			Type:      "name_too_long",
			Parameter: name,
			Details:   fmt.Sprintf("length %d > max %d", len(name), MaxParameterNameLen),
		}
	}
	if strings.ContainsAny(name, "\x00\n\r\t =") {
		return &ValidationError{
			Type:      "invalid_name",
			Parameter: name,
			Details:   "contains whitespace, '=' or a null byte",
		}
	}
	return nil
}

// Validate checks the header version, the parameter table and the architecture.
func (f *File) Validate() error {
	if f.FormatVersion != FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.FormatVersion)
	}
	if len(f.Parameters) == 0 {
		return ErrNoParameters
	}
	if len(f.Parameters) > MaxParameterCount {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyParameters, len(f.Parameters), MaxParameterCount)
	}
	for name := range f.Parameters {
		if err := ValidateParameterName(name); err != nil {
			return err
		}
	}
	if a := f.Architecture; a != nil {
		if a.InputSize <= 0 || len(a.Sizes) == 0 {
			return &ValidationError{
				Type:    "invalid_architecture",
				Details: fmt.Sprintf("input_size %d, %d layers", a.InputSize, len(a.Sizes)),
			}
		}
		for i, s := range a.Sizes {
			if s <= 0 {
				return &ValidationError{
					Type:    "invalid_architecture",
					Details: fmt.Sprintf("layer %d has size %d", i, s),
				}
			}
		}
		want, ok := a.ParameterCount()
		if !ok {
			return fmt.Errorf("%w: architecture needs more than %d", ErrTooManyParameters, MaxParameterCount)
		}
		if want != len(f.Parameters) {
			return &ValidationError{
				Type:    "parameter_count_mismatch",
				Details: fmt.Sprintf("architecture needs %d parameters, file has %d", want, len(f.Parameters)),
			}
		}
	}
	return nil
}

// ParameterCount returns the number of weights and biases the architecture
// describes: the sum over layers of size * (fan-in + 1). ok is false when
// the count exceeds MaxParameterCount; the sum is never computed past that
// bound, so oversized headers cannot overflow.
func (a *Architecture) ParameterCount() (count int, ok bool) {
	in := a.InputSize
	for _, size := range a.Sizes {
		if in >= MaxParameterCount || size > MaxParameterCount {
			return 0, false
		}
		// Both factors are at most 2^20, so the product fits in an int.
		count += size * (in + 1)
		if count > MaxParameterCount {
			return 0, false
		}
		in = size
	}
	return count, true
}
