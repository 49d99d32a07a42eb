// Package scalar implements the computation-graph cell used by the autodiff engine.
//
// A Node holds a forward value, an accumulated gradient, a debug label, the
// predecessors that produced it and the gradient rule bound at construction.
// Nodes are shared by pointer: any number of downstream nodes may reference
// the same predecessor, and identity (the pointer) is what distinguishes two
// nodes, never their value.
//
// Usage:
//
//	a := scalar.NewLeafWithLabel(2.0, "a")
//	a.SetValue(a.Value() - 0.01*a.Grad())
//	a.ZeroGrad()
package scalar

import "fmt"

// Rule is the local gradient rule bound to a node at construction.
//
// Backward reads the node's own value and gradient plus its predecessors and
// accumulates contributions into each predecessor's gradient. It must only
// use AccumulateGrad on predecessors.
type Rule interface {
	// Op returns the operation tag this rule belongs to.
	Op() Op

	// Backward propagates out's gradient into out's predecessors.
	Backward(out *Node)
}

// Node is a scalar value in the computation graph.
type Node struct {
	value float64
	grad  float64
	label string
	prev  []*Node // operands, fixed at construction
	op    Op
	rule  Rule // nil for leaves
}

// NewLeaf creates a node with no predecessors and no rule.
func NewLeaf(value float64) *Node {
	return &Node{value: value}
}

// NewLeafWithLabel creates a labelled leaf node.
func NewLeafWithLabel(value float64, label string) *Node {
	return &Node{value: value, label: label}
}

// Leaves promotes every value to its own leaf node.
func Leaves(values ...float64) []*Node {
	nodes := make([]*Node, len(values))
	for i, v := range values {
		nodes[i] = NewLeaf(v)
	}
	return nodes
}

// NewNode creates the result node of an operation.
//
// The value must already be computed; prev is stored as given (the slice is
// copied, the nodes are not) and rule is bound for the backward pass.
// Operators call this, user code should not need to.
func NewNode(value float64, rule Rule, prev ...*Node) *Node {
	if rule == nil {
		panic("scalar: NewNode requires a rule (use NewLeaf for leaves)")
	}
	return &Node{
		value: value,
		prev:  append([]*Node(nil), prev...),
		op:    rule.Op(),
		rule:  rule,
	}
}

// Value returns the forward value.
func (n *Node) Value() float64 {
	return n.value
}

// Grad returns the accumulated gradient.
func (n *Node) Grad() float64 {
	return n.grad
}

// Label returns the debug label.
func (n *Node) Label() string {
	return n.label
}

// Op returns the operation that produced the node (None for leaves).
func (n *Node) Op() Op {
	return n.op
}

// Rule returns the bound gradient rule, or nil for leaves.
func (n *Node) Rule() Rule {
	return n.rule
}

// IsLeaf reports whether the node was created directly from a value.
func (n *Node) IsLeaf() bool {
	return n.rule == nil
}

// Predecessors returns a snapshot of the operands that produced this node.
func (n *Node) Predecessors() []*Node {
	return append([]*Node(nil), n.prev...)
}

// NumPredecessors returns the number of operand slots.
func (n *Node) NumPredecessors() int {
	return len(n.prev)
}

// Predecessor returns the operand in slot i.
func (n *Node) Predecessor(i int) *Node {
	return n.prev[i]
}

// SetValue overwrites the value, e.g. after an optimizer step.
func (n *Node) SetValue(value float64) {
	n.value = value
}

// SetGrad overwrites the gradient.
func (n *Node) SetGrad(grad float64) {
	n.grad = grad
}

// ZeroGrad resets the gradient to 0.0.
func (n *Node) ZeroGrad() {
	n.grad = 0
}

// AccumulateGrad adds delta to the gradient.
func (n *Node) AccumulateGrad(delta float64) {
	n.grad += delta
}

// SetLabel sets the debug label.
func (n *Node) SetLabel(label string) {
	n.label = label
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node{%s | value: %.4f | grad: %.4f}", n.label, n.value, n.grad)
}
