package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
//
// For a + a both slots point at the same node, which therefore receives
// outputGrad twice.
type AddOp struct{}

// Add returns a new node holding a + b.
func Add(a, b *scalar.Node) *scalar.Node {
	return scalar.NewNode(a.Value()+b.Value(), AddOp{}, a, b)
}

// Op returns scalar.Add.
func (AddOp) Op() scalar.Op {
	return scalar.Add
}

// Backward passes the output gradient through to both operands.
func (AddOp) Backward(out *scalar.Node) {
	a, b := binaryOperands(scalar.Add, out)
	a.AccumulateGrad(out.Grad())
	b.AccumulateGrad(out.Grad())
}
