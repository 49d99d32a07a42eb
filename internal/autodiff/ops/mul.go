package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += b * outputGrad
//   - d(a*b)/db = a, so grad_b += a * outputGrad
type MulOp struct{}

// Mul returns a new node holding a * b.
func Mul(a, b *scalar.Node) *scalar.Node {
	return scalar.NewNode(a.Value()*b.Value(), MulOp{}, a, b)
}

// Op returns scalar.Mul.
func (MulOp) Op() scalar.Op {
	return scalar.Mul
}

// Backward scales the output gradient by the opposite operand.
func (MulOp) Backward(out *scalar.Node) {
	a, b := binaryOperands(scalar.Mul, out)
	a.AccumulateGrad(b.Value() * out.Grad())
	b.AccumulateGrad(a.Value() * out.Grad())
}
