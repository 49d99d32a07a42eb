package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// Sub returns a + (-b).
//
// There is no SubOp: the result is an Add node whose second operand is a Neg
// node, and gradients flow through those two rules.
func Sub(a, b *scalar.Node) *scalar.Node {
	return Add(a, Neg(b))
}
