// Package optim implements optimization algorithms for training scalar networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient and overwrite its
// value; they never touch the computation graph.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss := nn.SumSquaredError(model.Forward(x), y)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters using their current
	// gradients.
	Step()

	// ZeroGrad resets the gradient of every parameter to 0.0.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// New creates an optimizer by name ("sgd" or "adam").
func New(name string, params []*scalar.Node, lr, momentum float64) (Optimizer, error) {
	switch name {
	case "sgd", "":
		return NewSGD(params, SGDConfig{LR: lr, Momentum: momentum}), nil
	case "adam":
		return NewAdam(params, AdamConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", name)
	}
}

func zeroGrad(params []*scalar.Node) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
