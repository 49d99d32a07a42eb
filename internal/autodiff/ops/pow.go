package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// PowOp represents exponentiation by a constant: output = a^Exponent.
//
// The exponent is a plain parameter of the rule, not an operand, so no
// gradient flows to it.
//
// Backward pass:
//   - d(a^k)/da = k * a^(k-1), so grad_a += k * a^(k-1) * outputGrad
type PowOp struct {
	Exponent float64
}

// Pow returns a new node holding a^k.
// A negative base with a fractional exponent yields NaN.
func Pow(a *scalar.Node, k float64) *scalar.Node {
	return scalar.NewNode(math.Pow(a.Value(), k), PowOp{Exponent: k}, a)
}

// Op returns scalar.Pow.
func (PowOp) Op() scalar.Op {
	return scalar.Pow
}

// Backward applies the power rule to the base.
func (op PowOp) Backward(out *scalar.Node) {
	a := unaryOperand(scalar.Pow, out)
	k := op.Exponent
	a.AccumulateGrad(k * math.Pow(a.Value(), k-1) * out.Grad())
}
