package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Neuron computes tanh(Σ wᵢ·xᵢ + b).
//
// Example:
//
//	n := nn.NewNeuron(2, nn.WithSeed(1))
//	out := n.Forward(autodiff.Leaves(2.0, 0.0))
type Neuron struct {
	weights []*scalar.Node
	bias    *scalar.Node
	linear  bool // skip tanh
}

// NewNeuron creates a neuron with nIn weights and a bias.
func NewNeuron(nIn int, opts ...Option) *Neuron {
	o := newOptions(opts)
	return newNeuron(nIn, 1, o.linearOutput, o)
}

func newNeuron(nIn, fanOut int, linear bool, o options) *Neuron {
	weights := make([]*scalar.Node, nIn)
	for i := range weights {
		weights[i] = scalar.NewLeaf(o.weightInit(o.rng, nIn, fanOut))
	}
	return &Neuron{
		weights: weights,
		bias:    scalar.NewLeaf(o.biasInit(o.rng, nIn, fanOut)),
		linear:  linear,
	}
}

// Forward builds the graph for this neuron applied to x.
// Panics if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []*scalar.Node) *scalar.Node {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	products := make([]*scalar.Node, len(x))
	for i, w := range n.weights {
		products[i] = autodiff.Mul(w, x[i])
	}
	act := autodiff.Add(autodiff.Sum(products...), n.bias)

	if n.linear {
		return act
	}
	return autodiff.Tanh(act)
}

// Weights returns the weight nodes.
func (n *Neuron) Weights() []*scalar.Node {
	return n.weights
}

// Bias returns the bias node.
func (n *Neuron) Bias() *scalar.Node {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Node {
	params := make([]*scalar.Node, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets the gradients of all parameters.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}
