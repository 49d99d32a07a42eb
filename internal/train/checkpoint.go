package train

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/serialization"
)

// ModelType is the model_type written to checkpoints.
const ModelType = "MLP"

// Checkpoint snapshots the trainer's model and the outcome of res.
// res may be nil for an untrained model.
func (t *Trainer) Checkpoint(res *Result) *serialization.File {
	h := serialization.NewHeader(ModelType)
	h.Architecture = &serialization.Architecture{
		InputSize:    t.model.InputSize(),
		Sizes:        t.model.Sizes(),
		LinearOutput: t.model.LinearOutput(),
	}
	meta := &serialization.CheckpointMeta{
		OptimizerType:   t.cfg.Optimizer,
		OptimizerConfig: map[string]float64{"lr": t.opt.GetLR()},
	}
	if t.cfg.Optimizer == "sgd" {
		meta.OptimizerConfig["momentum"] = t.cfg.Momentum
	}
	if res != nil {
		h.RunID = res.RunID
		meta.Epoch = res.Epochs
		meta.Loss = res.FinalLoss
	}
	h.CheckpointMeta = meta

	return &serialization.File{
		Header:     h,
		Parameters: t.model.StateDict(),
	}
}

// LoadModel rebuilds the MLP described by f and restores its parameters.
func LoadModel(f *serialization.File) (*nn.MLP, error) {
	if f.ModelType != ModelType {
		return nil, fmt.Errorf("unsupported model type %q", f.ModelType)
	}
	arch := f.Architecture
	if arch == nil {
		return nil, errors.New("checkpoint has no architecture")
	}
	// Reject architectures that disagree with the parameter table before
	// any nodes are allocated.
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid checkpoint: %w", err)
	}

	var opts []nn.Option
	if arch.LinearOutput {
		opts = append(opts, nn.WithLinearOutput())
	}
	model := nn.NewMLP(arch.InputSize, arch.Sizes, opts...)
	if err := model.LoadStateDict(f.Parameters); err != nil {
		return nil, fmt.Errorf("restore parameters: %w", err)
	}
	return model, nil
}
