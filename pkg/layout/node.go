package layout

import (
	"slices"

	"github.com/matzehuels/layouttree/pkg/observability"
)

// Node is one element of a layout tree.
//
// A node owns its children; the parent pointer is a back reference only.
// Name and ID identify the node and must not change once it is attached.
// Uniqueness of both is the caller's responsibility.
//
// The zero value is an unnamed node with ID 0 at the origin. Use [NewNode]
// or [Node.Init] to set its identity before attaching it.
type Node struct {
	name     string
	id       int
	pos      Position
	parent   *Node
	children []*Node
	deleted  bool
}

// NewNode returns a free-standing node. pos is interpreted relative to the
// parent the node is later attached under (see [Layout.AddChild]).
func NewNode(name string, id int, pos Position) *Node {
	n := &Node{}
	n.Init(name, id, pos)
	return n
}

// Init sets the node's identity and position and empties its children.
// It does not attach the node to any tree. Re-initializing a node that is
// already attached leaves its former parent pointing at it; don't.
func (n *Node) Init(name string, id int, pos Position) {
	n.name = name
	n.id = id
	n.pos = pos
	n.parent = nil
	n.children = nil
	n.deleted = false
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// ID returns the node's id.
func (n *Node) ID() int { return n.id }

// Position returns the node's stored position.
//
// The stored value follows the accumulation rule of [Layout.AddChild]: for
// a tree built top-down it is the node's root-relative position.
func (n *Node) Position() Position { return n.pos }

// LocalPosition returns the node's offset from its parent's stored position.
// For a node without a parent it is the stored position itself.
func (n *Node) LocalPosition() Position {
	if n.parent == nil {
		return n.pos
	}
	return n.pos.Sub(n.parent.pos)
}

// Parent returns the node's parent, or nil for a root or free-standing node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order.
// The returned slice is a copy; the nodes are not.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int { return len(n.children) }

// IsDeleted reports whether the node was reclaimed as the interior of a
// deleted branch. Deleted nodes are rejected by every checked operation.
func (n *Node) IsDeleted() bool { return n.deleted }

// Depth returns the number of ancestors above n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Shift adds (dx, dy) to the node and every descendant, parent before
// children, and returns the number of nodes moved. Offsets between members
// of the branch are unchanged.
func (n *Node) Shift(dx, dy int) int {
	if n == nil {
		return 0
	}
	delta := Pos(dx, dy)
	visited := 0
	walk(n, func(cur *Node, _ int) bool {
		cur.pos = cur.pos.Add(delta)
		visited++
		return true
	})
	observability.Tree().OnShift(n.name, dx, dy, visited)
	return visited
}

// Walk visits n and its descendants in pre-order (depth-first, children in
// insertion order). depth is relative to n. Returning false from fn stops
// the walk.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	walk(n, fn)
}

// walk is the single pre-order traversal used by shifting, searching and
// counting. It keeps an explicit stack so arbitrarily deep trees cannot
// exhaust the goroutine stack. It reports whether the walk ran to the end.
func walk(root *Node, fn func(*Node, int) bool) bool {
	if root == nil {
		return true
	}

	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			return false
		}
		// Push in reverse so the first child is visited next.
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.children[i], f.depth + 1})
		}
	}
	return true
}
