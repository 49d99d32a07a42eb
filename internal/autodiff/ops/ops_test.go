package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// applyRule seeds out's gradient and runs its bound rule once.
func applyRule(out *scalar.Node, grad float64) {
	out.SetGrad(grad)
	out.Rule().Backward(out)
}

func TestForwardValues(t *testing.T) {
	a := scalar.NewLeaf(-2)
	b := scalar.NewLeaf(3)

	tests := []struct {
		name string
		node *scalar.Node
		want float64
		op   scalar.Op
	}{
		{"neg", ops.Neg(a), 2, scalar.Neg},
		{"add", ops.Add(a, b), 1, scalar.Add},
		{"mul", ops.Mul(a, b), -6, scalar.Mul},
		{"pow", ops.Pow(b, 2), 9, scalar.Pow},
		{"tanh", ops.Tanh(b), math.Tanh(3), scalar.Tanh},
		{"exp", ops.Exp(a), math.Exp(-2), scalar.Exp},
		{"sub", ops.Sub(a, b), -5, scalar.Add},
		{"div", ops.Div(a, b), -2.0 / 3.0, scalar.Mul},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.node.Value(), 1e-12)
			assert.Equal(t, tt.op, tt.node.Op())
			assert.Equal(t, 0.0, tt.node.Grad())
		})
	}
}

func TestNegOp_Backward(t *testing.T) {
	a := scalar.NewLeaf(4)
	out := ops.Neg(a)

	applyRule(out, 2)

	assert.Equal(t, -2.0, a.Grad())
}

func TestAddOp_Backward(t *testing.T) {
	a := scalar.NewLeaf(1)
	b := scalar.NewLeaf(2)
	out := ops.Add(a, b)

	applyRule(out, 0.5)

	assert.Equal(t, 0.5, a.Grad())
	assert.Equal(t, 0.5, b.Grad())
}

func TestAddOp_SameOperandTwice(t *testing.T) {
	a := scalar.NewLeaf(3)
	out := ops.Add(a, a)

	require.Equal(t, 2, out.NumPredecessors())
	applyRule(out, 1)

	assert.Equal(t, 2.0, a.Grad(), "each operand slot contributes")
}

func TestMulOp_Backward(t *testing.T) {
	a := scalar.NewLeaf(2)
	b := scalar.NewLeaf(-3)
	out := ops.Mul(a, b)

	applyRule(out, 2)

	assert.Equal(t, -6.0, a.Grad())
	assert.Equal(t, 4.0, b.Grad())
}

func TestMulOp_SameOperandTwice(t *testing.T) {
	a := scalar.NewLeaf(3)
	out := ops.Mul(a, a)

	applyRule(out, 1)

	assert.Equal(t, 6.0, a.Grad(), "d(a²)/da = 2a")
}

func TestPowOp_Backward(t *testing.T) {
	a := scalar.NewLeaf(3)
	out := ops.Pow(a, 3)

	applyRule(out, 1)

	assert.Equal(t, 27.0, out.Value())
	assert.InDelta(t, 27.0, a.Grad(), 1e-12)
	require.Equal(t, 1, out.NumPredecessors(), "the exponent is not an operand")
}

func TestPowOp_ExponentIsConstant(t *testing.T) {
	a := scalar.NewLeaf(2)
	out := ops.Pow(a, -1)

	rule, ok := out.Rule().(ops.PowOp)
	require.True(t, ok)
	assert.Equal(t, -1.0, rule.Exponent)
}

func TestTanhOp_Backward(t *testing.T) {
	a := scalar.NewLeaf(0.8814)
	out := ops.Tanh(a)

	applyRule(out, 1)

	want := 1 - math.Tanh(0.8814)*math.Tanh(0.8814)
	assert.InDelta(t, want, a.Grad(), 1e-12)
}

func TestTanh_Saturates(t *testing.T) {
	assert.Equal(t, 1.0, ops.Tanh(scalar.NewLeaf(1000)).Value())
	assert.Equal(t, -1.0, ops.Tanh(scalar.NewLeaf(-1000)).Value())
}

func TestExpOp_Backward(t *testing.T) {
	a := scalar.NewLeaf(1)
	out := ops.Exp(a)

	applyRule(out, 2)

	assert.InDelta(t, 2*math.E, a.Grad(), 1e-12)
}

func TestRulesAccumulate(t *testing.T) {
	a := scalar.NewLeaf(2)
	a.SetGrad(10)
	out := ops.Mul(a, scalar.NewLeaf(5))

	applyRule(out, 1)

	assert.Equal(t, 15.0, a.Grad(), "rules add to existing gradient instead of overwriting")
}

func TestSub_ComposesAddAndNeg(t *testing.T) {
	a := scalar.NewLeaf(5)
	b := scalar.NewLeaf(3)
	out := ops.Sub(a, b)

	require.Equal(t, scalar.Add, out.Op())
	neg := out.Predecessor(1)
	assert.Equal(t, scalar.Neg, neg.Op())
	assert.Same(t, b, neg.Predecessor(0))

	applyRule(out, 1)
	applyRule(neg, neg.Grad())

	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

func TestDiv_ComposesMulAndPow(t *testing.T) {
	a := scalar.NewLeaf(6)
	b := scalar.NewLeaf(2)
	out := ops.Div(a, b)

	require.Equal(t, scalar.Mul, out.Op())
	inv := out.Predecessor(1)
	assert.Equal(t, scalar.Pow, inv.Op())

	applyRule(out, 1)
	applyRule(inv, inv.Grad())

	assert.InDelta(t, 0.5, a.Grad(), 1e-12)
	assert.InDelta(t, -1.5, b.Grad(), 1e-12) // -a/b²
}

func TestNumericAnomaliesPropagate(t *testing.T) {
	assert.True(t, math.IsInf(ops.Div(scalar.NewLeaf(1), scalar.NewLeaf(0)).Value(), 1))
	assert.True(t, math.IsNaN(ops.Pow(scalar.NewLeaf(-8), 1.0/3.0).Value()))
	assert.True(t, math.IsNaN(ops.Div(scalar.NewLeaf(0), scalar.NewLeaf(0)).Value()))
}

func TestMalformedPredecessorsPanic(t *testing.T) {
	a := scalar.NewLeaf(1)

	tests := []struct {
		name string
		out  *scalar.Node
	}{
		{"add with one operand", scalar.NewNode(1, ops.AddOp{}, a)},
		{"mul with no operands", scalar.NewNode(1, ops.MulOp{})},
		{"tanh with two operands", scalar.NewNode(1, ops.TanhOp{}, a, a)},
		{"neg with no operands", scalar.NewNode(1, ops.NegOp{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { tt.out.Rule().Backward(tt.out) })
		})
	}
}
