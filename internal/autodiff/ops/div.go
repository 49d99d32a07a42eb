package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// Div returns a * b^-1.
//
// There is no DivOp: the result is a Mul node whose second operand is a Pow
// node, and gradients flow through those two rules. Dividing by a zero-valued
// node yields ±Inf or NaN.
func Div(a, b *scalar.Node) *scalar.Node {
	return Mul(a, Pow(b, -1))
}
