package layout

import (
	"slices"

	"github.com/matzehuels/layouttree/pkg/observability"
)

// DeleteBranch reclaims the interior of the branch rooted at node and
// returns the number of nodes visited, node included.
//
// Descendants are released children-first: each is marked deleted and loses
// its parent and children links. node itself stays valid and stays in its
// parent's children; only its own children are dropped. Use
// [Layout.RemoveBranch] to unlink it from the parent as well.
//
// Callers must not keep using descendants after this call; checked
// operations reject them with NODE_DELETED.
func DeleteBranch(node *Node) int {
	if node == nil {
		return 0
	}

	var order []*Node
	walk(node, func(n *Node, _ int) bool {
		order = append(order, n)
		return true
	})

	// Reversed pre-order releases every child before its parent.
	for _, n := range slices.Backward(order) {
		n.children = nil
		if n == node {
			continue
		}
		n.parent = nil
		n.deleted = true
	}

	observability.Tree().OnDeleteBranch(node.name, len(order))
	return len(order)
}
