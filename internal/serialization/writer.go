package serialization

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Write stamps f with its checksum and encodes it to w as YAML.
func Write(w io.Writer, f *File) error {
	if f.FormatVersion == 0 {
		f.FormatVersion = FormatVersion
	}
	if f.Version == "" {
		f.Version = Version
	}
	f.Checksum = ComputeChecksum(f.Parameters)

	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid checkpoint: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush checkpoint: %w", err)
	}
	return nil
}

// WriteFile writes f to path, replacing any existing file.
func WriteFile(path string, f *File) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Write(file, f)
}
