package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// ExpOp represents the exponential function: output = e^a.
//
// Backward pass:
//   - d(e^a)/da = e^a = output, so grad_a += output * outputGrad
type ExpOp struct{}

// Exp returns a new node holding e^a.
func Exp(a *scalar.Node) *scalar.Node {
	return scalar.NewNode(math.Exp(a.Value()), ExpOp{}, a)
}

// Op returns scalar.Exp.
func (ExpOp) Op() scalar.Op {
	return scalar.Exp
}

// Backward reuses the forward value as the local derivative.
func (ExpOp) Backward(out *scalar.Node) {
	a := unaryOperand(scalar.Exp, out)
	a.AccumulateGrad(out.Value() * out.Grad())
}
