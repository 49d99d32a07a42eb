package serialization

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func sampleFile() *File {
	h := NewHeader("MLP")
	h.RunID = "run-1"
	h.Architecture = &Architecture{InputSize: 2, Sizes: []int{1}}
	h.CheckpointMeta = &CheckpointMeta{Epoch: 3, Loss: 0.25, OptimizerType: "sgd"}
	return &File{
		Header: h,
		Parameters: map[string]float64{
			"layers.0.neurons.0.w.0": 0.1,
			"layers.0.neurons.0.w.1": -0.7123456789012345,
			"layers.0.neurons.0.b":   1e-12,
		},
	}
}

// TestComputeChecksum verifies the checksum is order independent and value sensitive.
func TestComputeChecksum(t *testing.T) {
	a := map[string]float64{"x": 1, "y": 2}
	b := map[string]float64{"y": 2, "x": 1}
	if ComputeChecksum(a) != ComputeChecksum(b) {
		t.Error("Checksums should match for identical parameters")
	}

	c := map[string]float64{"x": 1, "y": 2.0000000001}
	if ComputeChecksum(a) == ComputeChecksum(c) {
		t.Error("Checksums should differ for different values")
	}

	// Hex-encoded SHA-256
	if got := len(ComputeChecksum(a)); got != 64 {
		t.Errorf("Expected checksum length 64, got %d", got)
	}
}

// TestValidateChecksum verifies checksum comparison.
func TestValidateChecksum(t *testing.T) {
	if err := ValidateChecksum("abc", "abc"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateChecksum("abc", "abd"); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	src := sampleFile()

	var buf bytes.Buffer
	if err := Write(&buf, src); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if src.Checksum == "" {
		t.Fatal("Write should stamp the checksum")
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got.ModelType != "MLP" || got.RunID != "run-1" {
		t.Errorf("header mismatch: %+v", got.Header)
	}
	if got.FormatVersion != FormatVersion {
		t.Errorf("FormatVersion = %d, want %d", got.FormatVersion, FormatVersion)
	}
	if got.Architecture == nil || got.Architecture.InputSize != 2 {
		t.Errorf("architecture not preserved: %+v", got.Architecture)
	}
	if got.CheckpointMeta == nil || got.CheckpointMeta.Epoch != 3 {
		t.Errorf("checkpoint meta not preserved: %+v", got.CheckpointMeta)
	}
	for name, want := range src.Parameters {
		if got.Parameters[name] != want {
			t.Errorf("%s = %v, want %v", name, got.Parameters[name], want)
		}
	}
}

func TestReadDetectsTampering(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleFile()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tampered := strings.Replace(buf.String(), "layers.0.neurons.0.w.0: 0.1", "layers.0.neurons.0.w.0: 0.2", 1)
	if tampered == buf.String() {
		t.Fatalf("test setup: parameter line not found in\n%s", buf.String())
	}

	_, err := Read(strings.NewReader(tampered))
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	f := sampleFile()
	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	future := strings.Replace(buf.String(), "format_version: 1", "format_version: 99", 1)
	_, err := Read(strings.NewReader(future))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestWriteRejectsEmptyParameters(t *testing.T) {
	f := &File{Header: NewHeader("MLP")}
	err := Write(&bytes.Buffer{}, f)
	if !errors.Is(err, ErrNoParameters) {
		t.Errorf("expected ErrNoParameters, got %v", err)
	}
}

func TestValidateParameterName(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		wantErr bool
	}{
		{"valid", "layers.0.neurons.1.w.2", false},
		{"empty", "", true},
		{"space", "bad name", true},
		{"equals", "a=b", true},
		{"null", "a\x00b", true},
		{"too long", strings.Repeat("a", MaxParameterNameLen+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParameterName(tt.param)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateParameterName(%q) error = %v, wantErr %v", tt.param, err, tt.wantErr)
			}
			var verr *ValidationError
			if err != nil && !errors.As(err, &verr) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateArchitecture(t *testing.T) {
	f := sampleFile()
	f.Architecture.Sizes = []int{2, 0}
	var verr *ValidationError
	if err := f.Validate(); !errors.As(err, &verr) || verr.Type != "invalid_architecture" {
		t.Errorf("expected invalid_architecture, got %v", err)
	}
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := WriteFile(path, sampleFile()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	f, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(f.Parameters) != 3 {
		t.Errorf("expected 3 parameters, got %d", len(f.Parameters))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParameterCount(t *testing.T) {
	a := &Architecture{InputSize: 3, Sizes: []int{4, 4, 1}}
	got, ok := a.ParameterCount()
	if !ok || got != 4*4+4*5+1*5 {
		t.Errorf("ParameterCount() = %d, %v; want 41, true", got, ok)
	}

	huge := &Architecture{InputSize: 1 << 20, Sizes: []int{1 << 20}}
	if _, ok := huge.ParameterCount(); ok {
		t.Error("expected oversized architecture to be rejected")
	}

	wide := &Architecture{InputSize: 1 << 19, Sizes: []int{1 << 19, 1 << 19}}
	if _, ok := wide.ParameterCount(); ok {
		t.Error("expected oversized architecture to be rejected")
	}
}

func TestValidateRejectsOversizedArchitecture(t *testing.T) {
	f := sampleFile()
	f.Architecture = &Architecture{InputSize: 1 << 20, Sizes: []int{1 << 20}}
	if err := f.Validate(); !errors.Is(err, ErrTooManyParameters) {
		t.Errorf("expected ErrTooManyParameters, got %v", err)
	}
}

func TestValidateRejectsParameterCountMismatch(t *testing.T) {
	f := sampleFile()
	f.Architecture.Sizes = []int{2}
	var verr *ValidationError
	if err := f.Validate(); !errors.As(err, &verr) || verr.Type != "parameter_count_mismatch" {
		t.Errorf("expected parameter_count_mismatch, got %v", err)
	}
}
