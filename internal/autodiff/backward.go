package autodiff

import (
	"time"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// Backward computes d(root)/d(node) for every node reachable from root.
//
// Algorithm:
//  1. Seed root's gradient with 1.0
//  2. Order the graph with TopologicalSort
//  3. Walk the order in reverse, applying each node's bound rule once
//
// Gradients accumulate: nothing is reset, so callers zero parameter
// gradients between independent passes. Values and labels are untouched.
// Calling Backward on an inner node differentiates only its subgraph.
// A nil root is a no-op, matching TopologicalSort.
//
// Example:
//
//	a := autodiff.Leaf(3.0, "a")
//	b := autodiff.Add(a, a)
//	autodiff.Backward(b)
//	a.Grad() // 2.0
func Backward(root *scalar.Node) {
	if root == nil {
		return
	}
	start := time.Now()

	root.SetGrad(1.0)
	order := TopologicalSort(root)

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		rule := node.Rule()
		if rule == nil {
			continue
		}
		rule.Backward(node)
		ruleCounter(rule.Op()).Inc()
	}

	backwardPasses.Inc()
	backwardGraphNodes.Observe(float64(len(order)))
	backwardDuration.Observe(time.Since(start).Seconds())
}
