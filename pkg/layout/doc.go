// Package layout provides a hierarchical layout tree: nodes arranged in a
// parent/child tree, each holding a position, with position queries by node,
// name or id.
//
// # Overview
//
// Callers create nodes with [NewNode], root a [Layout] at one of them with
// [New], and grow the tree with [Layout.AddChild]. Positions are then moved
// with [Layout.UpdatePosition] or [Node.Shift] and read back with
// [Layout.PositionForNode], [Layout.PositionForName] and
// [Layout.PositionForID].
//
//	root := layout.NewNode("window", 0, layout.Pos(0, 0))
//	lay, _ := layout.New(root)
//	panel := layout.NewNode("panel", 1, layout.Pos(10, 5))
//	_ = lay.AddChild(root, panel)
//	pos, ok := lay.PositionForName("panel") // (10, 5), true
//
// # Accumulation
//
// The position given to [NewNode] is the node's offset from the parent it
// will be attached under. [Layout.AddChild] adds the parent's stored
// position into the child, so every stored position already contains the
// offsets of all its ancestors at attach time. For a tree built top-down
// the stored value is the root-relative position and queries answer in
// O(1) once the node is found.
//
// Moving a node shifts its whole branch by the same delta ([Node.Shift]),
// which keeps every stored value consistent without recomputing offsets.
// [Node.LocalPosition] recovers the offset from the parent.
//
// A branch built free-standing and attached afterwards only has its top
// node accumulated; its descendants keep the values they had.
//
// # Lookup
//
// Search is a linear pre-order walk ([DepthFirstSearch]); the first match
// wins. Names and ids are expected to be unique but are not checked.
// A miss is reported by a false boolean, never by a stale position.
//
// # Deletion
//
// [DeleteBranch] releases every descendant of a node. [Layout.RemoveBranch]
// also unlinks the node from its parent.
//
// # Errors
//
// Checked operations return *errors.Error values from
// [github.com/matzehuels/layouttree/pkg/errors] with codes such as
// NOT_IN_LAYOUT, ALREADY_ATTACHED, ROOT_NODE and NODE_DELETED.
//
// # Concurrency
//
// Layout and Node are not safe for concurrent use. Traversals use explicit
// stacks, so tree depth is bounded only by memory.
package layout
