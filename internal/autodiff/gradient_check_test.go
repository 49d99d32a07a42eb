package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// numericalGradient computes df/dx with a central difference.
func numericalGradient(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// neuron evaluates tanh(x1*w1 + x2*w2 + b) with the engine.
func neuron(x1, x2, w1, w2, b *scalar.Node) *scalar.Node {
	n := autodiff.Add(autodiff.Add(autodiff.Mul(x1, w1), autodiff.Mul(x2, w2)), b)
	return autodiff.Tanh(n)
}

func TestGradientCheck_Neuron(t *testing.T) {
	const (
		x1v, x2v = 2.0, 0.0
		w1v, w2v = -3.0, 1.0
		bv       = 6.88137358
		h        = 1e-3
	)

	x1 := autodiff.Leaf(x1v, "x1")
	x2 := autodiff.Leaf(x2v, "x2")
	w1 := autodiff.Leaf(w1v, "w1")
	w2 := autodiff.Leaf(w2v, "w2")
	b := autodiff.Leaf(bv, "b")
	o := neuron(x1, x2, w1, w2, b)

	autodiff.Backward(o)

	assert.InDelta(t, 0.7071, o.Value(), 1e-4)
	local := 1 - o.Value()*o.Value()
	assert.InDelta(t, x1v*local, w1.Grad(), 1e-12)
	assert.InDelta(t, w1v*local, x1.Grad(), 1e-12)
	assert.InDelta(t, 0.0, w2.Grad(), 1e-12)
	assert.InDelta(t, w2v*local, x2.Grad(), 1e-12)
	assert.InDelta(t, local, b.Grad(), 1e-12)

	eval := func(x1v, x2v, w1v, w2v, bv float64) float64 {
		return math.Tanh(x1v*w1v + x2v*w2v + bv)
	}
	tests := []struct {
		name string
		node *scalar.Node
		f    func(float64) float64
		at   float64
	}{
		{"w1", w1, func(v float64) float64 { return eval(x1v, x2v, v, w2v, bv) }, w1v},
		{"x1", x1, func(v float64) float64 { return eval(v, x2v, w1v, w2v, bv) }, x1v},
		{"w2", w2, func(v float64) float64 { return eval(x1v, x2v, w1v, v, bv) }, w2v},
		{"x2", x2, func(v float64) float64 { return eval(x1v, v, w1v, w2v, bv) }, x2v},
		{"b", b, func(v float64) float64 { return eval(x1v, x2v, w1v, w2v, v) }, bv},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, numericalGradient(tt.f, tt.at, h), tt.node.Grad(), 1e-4)
		})
	}
}

func TestGradientCheck_Operators(t *testing.T) {
	const h = 1e-3

	tests := []struct {
		name  string
		at    float64
		build func(x *scalar.Node) *scalar.Node
		f     func(x float64) float64
	}{
		{"neg", 1.3, func(x *scalar.Node) *scalar.Node { return autodiff.Neg(x) }, func(x float64) float64 { return -x }},
		{"square", -0.7, func(x *scalar.Node) *scalar.Node { return autodiff.Mul(x, x) }, func(x float64) float64 { return x * x }},
		{"pow", 1.7, func(x *scalar.Node) *scalar.Node { return autodiff.Pow(x, 2.5) }, func(x float64) float64 { return math.Pow(x, 2.5) }},
		{"reciprocal", 0.9, func(x *scalar.Node) *scalar.Node { return autodiff.Div(1.0, x) }, func(x float64) float64 { return 1 / x }},
		{"exp", 0.4, func(x *scalar.Node) *scalar.Node { return autodiff.Exp(x) }, math.Exp},
		{"tanh", -0.3, func(x *scalar.Node) *scalar.Node { return autodiff.Tanh(x) }, math.Tanh},
		{
			"polynomial", -3.0,
			func(x *scalar.Node) *scalar.Node {
				return autodiff.Add(autodiff.Sub(autodiff.Mul(3.0, autodiff.Pow(x, 2)), autodiff.Mul(4.0, x)), 5.0)
			},
			func(x float64) float64 { return 3*x*x - 4*x + 5 },
		},
		{
			"quotient", 0.5,
			func(x *scalar.Node) *scalar.Node {
				e := autodiff.Exp(x)
				return autodiff.Div(autodiff.Sub(e, x), autodiff.Add(autodiff.Tanh(x), 2.0))
			},
			func(x float64) float64 { return (math.Exp(x) - x) / (math.Tanh(x) + 2) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := autodiff.Leaf(tt.at, "x")
			out := tt.build(x)

			assert.InDelta(t, tt.f(tt.at), out.Value(), 1e-12)

			autodiff.Backward(out)
			assert.InDelta(t, numericalGradient(tt.f, tt.at, h), x.Grad(), 1e-4)
		})
	}
}
