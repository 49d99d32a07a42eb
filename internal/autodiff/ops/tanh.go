package ops

import (
	"math"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// TanhOp represents the hyperbolic tangent activation:
// tanh(x) = (exp(2x) - 1) / (exp(2x) + 1).
type TanhOp struct{}

// Tanh returns a new node holding tanh(a).
func Tanh(a *scalar.Node) *scalar.Node {
	e2x := math.Exp(2 * a.Value())
	v := (e2x - 1) / (e2x + 1)
	if math.IsInf(e2x, 1) {
		// (inf-1)/(inf+1) is NaN; the limit is 1.
		v = 1
	}
	return scalar.NewNode(v, TanhOp{}, a)
}

// Op returns scalar.Tanh.
func (TanhOp) Op() scalar.Op {
	return scalar.Tanh
}

// Backward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), and tanh(x) is the node's own value:
// grad_input += (1 - output²) * outputGrad.
func (TanhOp) Backward(out *scalar.Node) {
	a := unaryOperand(scalar.Tanh, out)
	t := out.Value()
	a.AccumulateGrad((1 - t*t) * out.Grad())
}
