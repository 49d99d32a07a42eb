// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Architecture:
//   - scalar.Node: value, gradient and the rule bound at construction
//   - ops: one Operation per primitive (Neg, Add, Mul, Pow, Tanh, Exp)
//   - Operators here: promote float64 operands to leaves and dispatch to ops
//   - TopologicalSort + Backward: seed, order, replay rules in reverse
//
// Graphs are built eagerly: every operator computes its value immediately.
//
// Usage:
//
//	x := autodiff.Leaf(2.0, "x")
//	y := autodiff.Add(autodiff.Mul(x, x), 1.0) // y = x² + 1
//	autodiff.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Operand is either an existing node or a raw float64 constant.
type Operand interface {
	*scalar.Node | float64
}

// promote returns v as a node, wrapping constants in an anonymous leaf.
func promote[T Operand](v T) *scalar.Node {
	switch x := any(v).(type) {
	case *scalar.Node:
		return x
	case float64:
		return scalar.NewLeaf(x)
	}
	panic("autodiff: unsupported operand type")
}

// Leaf creates a labelled leaf node. The label is optional.
func Leaf(value float64, label ...string) *scalar.Node {
	if len(label) > 0 {
		return scalar.NewLeafWithLabel(value, label[0])
	}
	return scalar.NewLeaf(value)
}

// Leaves promotes every value to its own leaf node.
func Leaves(values ...float64) []*scalar.Node {
	return scalar.Leaves(values...)
}

// Neg returns -a.
func Neg[A Operand](a A) *scalar.Node {
	return ops.Neg(promote(a))
}

// Add returns a + b.
func Add[A, B Operand](a A, b B) *scalar.Node {
	return ops.Add(promote(a), promote(b))
}

// Sub returns a - b, built as a + (-b).
func Sub[A, B Operand](a A, b B) *scalar.Node {
	return ops.Sub(promote(a), promote(b))
}

// Mul returns a * b.
func Mul[A, B Operand](a A, b B) *scalar.Node {
	return ops.Mul(promote(a), promote(b))
}

// Div returns a / b, built as a * b^-1.
func Div[A, B Operand](a A, b B) *scalar.Node {
	return ops.Div(promote(a), promote(b))
}

// Pow returns a^k. The exponent is a constant and receives no gradient.
func Pow[A Operand](a A, k float64) *scalar.Node {
	return ops.Pow(promote(a), k)
}

// Tanh returns tanh(a).
func Tanh[A Operand](a A) *scalar.Node {
	return ops.Tanh(promote(a))
}

// Exp returns e^a.
func Exp[A Operand](a A) *scalar.Node {
	return ops.Exp(promote(a))
}

// Sum folds nodes with Add, starting from a 0.0 leaf.
// Sum of no nodes is a bare 0.0 leaf.
func Sum(nodes ...*scalar.Node) *scalar.Node {
	acc := scalar.NewLeaf(0)
	for _, n := range nodes {
		acc = ops.Add(acc, n)
	}
	return acc
}
