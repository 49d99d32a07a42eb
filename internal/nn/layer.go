package nn

import "github.com/born-ml/scalargrad/internal/scalar"

// Layer is a row of neurons that all receive the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer mapping nIn inputs to nOut outputs.
func NewLayer(nIn, nOut int, opts ...Option) *Layer {
	o := newOptions(opts)
	return newLayer(nIn, nOut, o.linearOutput, o)
}

func newLayer(nIn, nOut int, linear bool, o options) *Layer {
	neurons := make([]*Neuron, nOut)
	for i := range neurons {
		neurons[i] = newNeuron(nIn, nOut, linear, o)
	}
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to x.
func (l *Layer) Forward(x []*scalar.Node) []*scalar.Node {
	out := make([]*scalar.Node, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Neurons returns the neurons of this layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*scalar.Node {
	var params []*scalar.Node
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}
