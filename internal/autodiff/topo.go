package autodiff

import "github.com/born-ml/scalargrad/internal/scalar"

// TopologicalSort returns every node reachable from root, each exactly once,
// with every node placed after all of its predecessors. root is last.
//
// The traversal is a depth-first post-order visiting predecessors left to
// right. A single visited set keyed by node identity is shared by the whole
// traversal, so a node reached through several consumers is emitted once and
// its subtree is not descended again. The order is deterministic.
func TopologicalSort(root *scalar.Node) []*scalar.Node {
	if root == nil {
		return nil
	}

	var order []*scalar.Node
	visited := make(map[*scalar.Node]struct{})

	var visit func(n *scalar.Node)
	visit = func(n *scalar.Node) {
		if _, seen := visited[n]; seen {
			return
		}
		visited[n] = struct{}{}
		for i := 0; i < n.NumPredecessors(); i++ {
			visit(n.Predecessor(i))
		}
		order = append(order, n)
	}
	visit(root)

	return order
}
