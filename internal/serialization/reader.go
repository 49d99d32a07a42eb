package serialization

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Read decodes a checkpoint from r, validates it and verifies its checksum.
func Read(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateChecksum(ComputeChecksum(f.Parameters), f.Checksum); err != nil {
		return nil, err
	}
	return &f, nil
}

// ReadFile reads a checkpoint from path.
func ReadFile(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Read(file)
}
