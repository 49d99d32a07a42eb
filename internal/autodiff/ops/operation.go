// Package ops defines the differentiable operations of the scalar autodiff engine.
//
// Each operation has a constructor that computes the forward value eagerly and
// a rule type implementing scalar.Rule, bound to the result node:
//   - NegOp: -a (d/da = -1)
//   - AddOp: a + b (d/da = d/db = 1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - PowOp: a^k for a constant k (d/da = k*a^(k-1))
//   - TanhOp: tanh(a) (d/da = 1 - tanh²(a))
//   - ExpOp: e^a (d/da = e^a)
//
// Sub and Div are compositions of the primitives and bind no rule of their own.
//
// Rules only ever accumulate into predecessor gradients, so shared operands
// (a + a, diamonds) receive one contribution per operand slot.
package ops

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// Operation is a gradient rule bound to the node produced by an operation.
type Operation = scalar.Rule

// unaryOperand returns the single predecessor of out.
// Panics if the node was not built with exactly one operand.
func unaryOperand(op scalar.Op, out *scalar.Node) *scalar.Node {
	if n := out.NumPredecessors(); n != 1 {
		panic(fmt.Sprintf("ops: %s rule expects 1 operand, node has %d", op, n))
	}
	return out.Predecessor(0)
}

// binaryOperands returns both predecessors of out.
// Panics if the node was not built with exactly two operands.
func binaryOperands(op scalar.Op, out *scalar.Node) (a, b *scalar.Node) {
	if n := out.NumPredecessors(); n != 2 {
		panic(fmt.Sprintf("ops: %s rule expects 2 operands, node has %d", op, n))
	}
	return out.Predecessor(0), out.Predecessor(1)
}
