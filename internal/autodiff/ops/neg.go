package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// NegOp represents negation: output = -a.
//
// Backward pass:
//   - d(-a)/da = -1, so grad_a += -outputGrad
type NegOp struct{}

// Neg returns a new node holding -a.
func Neg(a *scalar.Node) *scalar.Node {
	return scalar.NewNode(-a.Value(), NegOp{}, a)
}

// Op returns scalar.Neg.
func (NegOp) Op() scalar.Op {
	return scalar.Neg
}

// Backward accumulates -out.grad into the operand.
func (NegOp) Backward(out *scalar.Node) {
	a := unaryOperand(scalar.Neg, out)
	a.AccumulateGrad(-1 * out.Grad())
}
