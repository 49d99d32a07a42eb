package serialization

import "time"

// Format constants.
const (
	FormatVersion = 1 // v1: YAML document with SHA-256 checksum
	Version       = "0.1.0"
)

// Header describes the model stored in a checkpoint.
type Header struct {
	FormatVersion  int               `yaml:"format_version"`         // Version of the checkpoint format
	Version        string            `yaml:"version"`                // Version of scalargrad that created this file
	ModelType      string            `yaml:"model_type"`             // Type of model (e.g., "MLP")
	Architecture   *Architecture     `yaml:"architecture,omitempty"` // Layer layout needed to rebuild the model
	CreatedAt      time.Time         `yaml:"created_at"`             // When the file was created
	RunID          string            `yaml:"run_id,omitempty"`       // Training run that produced the file
	Metadata       map[string]string `yaml:"metadata,omitempty"`     // Custom metadata
	CheckpointMeta *CheckpointMeta   `yaml:"checkpoint,omitempty"`   // Training state (optional)
}

// Architecture is the shape of an MLP.
type Architecture struct {
	InputSize    int   `yaml:"input_size"`
	Sizes        []int `yaml:"sizes"`
	LinearOutput bool  `yaml:"linear_output,omitempty"`
}

// CheckpointMeta contains training state information for checkpoints.
type CheckpointMeta struct {
	Epoch           int                `yaml:"epoch"`                      // Training epoch number
	Loss            float64            `yaml:"loss"`                       // Loss value at checkpoint
	OptimizerType   string             `yaml:"optimizer_type"`             // Optimizer type ("sgd", "adam")
	OptimizerConfig map[string]float64 `yaml:"optimizer_config,omitempty"` // Optimizer hyperparameters
}

// File is a complete checkpoint.
type File struct {
	Header     `yaml:",inline"`
	Parameters map[string]float64 `yaml:"parameters"`
	Checksum   string             `yaml:"checksum"`
}

// NewHeader returns a header for modelType stamped with the current time.
func NewHeader(modelType string) Header {
	return Header{
		FormatVersion: FormatVersion,
		Version:       Version,
		ModelType:     modelType,
		CreatedAt:     time.Now().UTC(),
	}
}
