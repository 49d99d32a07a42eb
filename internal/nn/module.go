// Package nn implements a minimal multilayer perceptron on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: Parameters and ZeroGrad for every component
//   - Neuron: weighted sum of inputs plus bias, followed by tanh
//   - Layer: a row of independent neurons sharing the same inputs
//   - MLP: layers applied in sequence
//   - Loss functions: SumSquaredError, MSELoss
//
// Every forward pass builds a fresh graph from the engine's operators; the
// parameters are long-lived leaf nodes shared by all of those graphs.
package nn

import "github.com/born-ml/scalargrad/internal/scalar"

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns all trainable leaf nodes of this module.
	Parameters() []*scalar.Node

	// ZeroGrad resets the gradient of every parameter to 0.0.
	//
	// Call this before each backward pass; gradients accumulate otherwise.
	ZeroGrad()
}

// zeroGrad resets the gradients of params.
func zeroGrad(params []*scalar.Node) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
