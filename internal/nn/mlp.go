package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// MLP is a multilayer perceptron: layers applied in sequence.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSeed(42))
//	out := model.ForwardValues(2.0, 3.0, -1.0)
type MLP struct {
	nIn          int
	layers       []*Layer
	linearOutput bool
}

// NewMLP creates an MLP with nIn inputs and one layer per entry of sizes.
// All layers use tanh unless WithLinearOutput is given, in which case the
// last layer is linear.
func NewMLP(nIn int, sizes []int, opts ...Option) *MLP {
	if len(sizes) == 0 {
		panic("MLP: at least one layer size is required")
	}
	o := newOptions(opts)

	dims := append([]int{nIn}, sizes...)
	layers := make([]*Layer, len(sizes))
	for i := range sizes {
		last := i == len(sizes)-1
		layers[i] = newLayer(dims[i], dims[i+1], last && o.linearOutput, o)
	}
	return &MLP{nIn: nIn, layers: layers, linearOutput: o.linearOutput}
}

// Forward feeds x through every layer and returns the last layer's outputs.
func (m *MLP) Forward(x []*scalar.Node) []*scalar.Node {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// ForwardValues promotes raw inputs to leaves and runs Forward.
func (m *MLP) ForwardValues(x ...float64) []*scalar.Node {
	return m.Forward(scalar.Leaves(x...))
}

// InputSize returns the number of inputs.
func (m *MLP) InputSize() int {
	return m.nIn
}

// LinearOutput reports whether the last layer skips tanh.
func (m *MLP) LinearOutput() bool {
	return m.linearOutput
}

// Layers returns the layers in application order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Parameters returns the parameters of all layers in order.
func (m *MLP) Parameters() []*scalar.Node {
	var params []*scalar.Node
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}

// Sizes returns the layer widths.
func (m *MLP) Sizes() []int {
	sizes := make([]int, len(m.layers))
	for i, l := range m.layers {
		sizes[i] = len(l.neurons)
	}
	return sizes
}

// StateDict returns every parameter value keyed by its structural name:
// layers.<i>.neurons.<j>.w.<k> and layers.<i>.neurons.<j>.b.
func (m *MLP) StateDict() map[string]float64 {
	state := make(map[string]float64)
	m.eachParameter(func(name string, p *scalar.Node) {
		state[name] = p.Value()
	})
	return state
}

// LoadStateDict overwrites parameter values from a state dictionary.
//
// Every parameter must be present; extra keys are rejected so that a
// checkpoint from a different architecture does not load silently.
func (m *MLP) LoadStateDict(state map[string]float64) error {
	var missing []string
	m.eachParameter(func(name string, _ *scalar.Node) {
		if _, ok := state[name]; !ok {
			missing = append(missing, name)
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("missing %s in state dict (%d parameters missing)", missing[0], len(missing))
	}
	if got, want := len(state), len(m.Parameters()); got != want {
		return fmt.Errorf("state dict has %d entries, model has %d parameters", got, want)
	}

	m.eachParameter(func(name string, p *scalar.Node) {
		p.SetValue(state[name])
	})
	return nil
}

func (m *MLP) eachParameter(f func(name string, p *scalar.Node)) {
	for i, l := range m.layers {
		for j, n := range l.neurons {
			for k, w := range n.weights {
				f(fmt.Sprintf("layers.%d.neurons.%d.w.%d", i, j, k), w)
			}
			f(fmt.Sprintf("layers.%d.neurons.%d.b", i, j), n.bias)
		}
	}
}
