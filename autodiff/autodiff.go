// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation on a *Node returns a new node that remembers
// its operands and how to push gradients back to them. Calling Backward on
// a result fills in the gradient of that result with respect to every node
// it was computed from.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    a := autodiff.Leaf(2.0, "a")
//	    b := autodiff.Leaf(-3.0, "b")
//
//	    // Operands may be nodes or plain float64 constants
//	    c := autodiff.Add(autodiff.Mul(a, b), 10.0) // a*b + 10
//	    d := autodiff.Tanh(c)
//
//	    autodiff.Backward(d)
//	    fmt.Println(a.Grad(), b.Grad())
//	}
//
// Gradients accumulate: calling Backward twice without ZeroGrad sums the
// contributions of both passes, and a node used by several consumers
// receives the sum of their contributions.
//
// Graphs are not safe for concurrent use. Build and differentiate
// independent graphs from separate goroutines instead.
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Node is a scalar value in a computation graph.
type Node = scalar.Node

// Op identifies the operation that produced a node.
type Op = scalar.Op

// Operations.
const (
	OpNone = scalar.None
	OpNeg  = scalar.Neg
	OpAdd  = scalar.Add
	OpMul  = scalar.Mul
	OpPow  = scalar.Pow
	OpTanh = scalar.Tanh
	OpExp  = scalar.Exp
)

// Operand is either a *Node or a float64 constant.
type Operand = autodiff.Operand

// Leaf creates an input node with an optional label.
func Leaf(value float64, label ...string) *Node {
	return autodiff.Leaf(value, label...)
}

// Leaves creates one leaf per value.
func Leaves(values ...float64) []*Node {
	return autodiff.Leaves(values...)
}

// Neg returns -a.
func Neg[A Operand](a A) *Node { return autodiff.Neg(a) }

// Add returns a + b.
func Add[A, B Operand](a A, b B) *Node { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub[A, B Operand](a A, b B) *Node { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul[A, B Operand](a A, b B) *Node { return autodiff.Mul(a, b) }

// Div returns a / b.
func Div[A, B Operand](a A, b B) *Node { return autodiff.Div(a, b) }

// Pow returns a raised to the constant exponent k.
func Pow[A Operand](a A, k float64) *Node { return autodiff.Pow(a, k) }

// Tanh returns tanh(a).
func Tanh[A Operand](a A) *Node { return autodiff.Tanh(a) }

// Exp returns e^a.
func Exp[A Operand](a A) *Node { return autodiff.Exp(a) }

// Sum returns the sum of nodes, or a zero leaf when nodes is empty.
func Sum(nodes ...*Node) *Node {
	return autodiff.Sum(nodes...)
}

// TopologicalSort returns every node reachable from root, each after all
// of its predecessors.
func TopologicalSort(root *Node) []*Node {
	return autodiff.TopologicalSort(root)
}

// Backward sets root's gradient to 1 and propagates gradients to every node
// root depends on.
func Backward(root *Node) {
	autodiff.Backward(root)
}
