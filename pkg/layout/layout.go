package layout

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layouttree/pkg/errors"
	"github.com/matzehuels/layouttree/pkg/observability"
)

// Layout is a tree of nodes with a single root.
//
// A Layout is not safe for concurrent use; it is meant to be built and
// mutated by one caller.
type Layout struct {
	root   *Node
	logger *log.Logger
}

// Option configures a Layout.
type Option func(*Layout)

// WithLogger sets the logger used for debug output of tree mutations.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(lay *Layout) {
		if l != nil {
			lay.logger = l
		}
	}
}

// New creates a Layout rooted at root. See [Layout.Init] for the errors.
func New(root *Node, opts ...Option) (*Layout, error) {
	l := &Layout{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(l)
	}
	if err := l.Init(root); err != nil {
		return nil, err
	}
	return l, nil
}

// Init binds the layout to root and empties root's children. Any children
// root had are detached from it.
//
// Returns an INVALID_INPUT error for a nil root, NODE_DELETED for a
// reclaimed node, and ALREADY_ATTACHED if root has a parent.
func (l *Layout) Init(root *Node) error {
	if root == nil {
		return errors.New(errors.ErrCodeInvalidInput, "layout root must not be nil")
	}
	if root.deleted {
		return errors.New(errors.ErrCodeNodeDeleted, "node %q was deleted", root.name)
	}
	if root.parent != nil {
		return errors.New(errors.ErrCodeAlreadyAttached, "node %q already has parent %q", root.name, root.parent.name)
	}
	for _, c := range root.children {
		c.parent = nil
	}
	root.children = nil
	l.root = root
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	l.logger.Debug("layout initialized", "root", root.name, "id", root.id, "pos", root.pos)
	return nil
}

// Root returns the layout's root node.
func (l *Layout) Root() *Node { return l.root }

// AddChild attaches child as the last child of parent.
//
// The child's position is accumulated: parent's stored position is added
// to it, so a child initialized at its offset from parent ends up holding
// the same coordinate space as parent. Only child is adjusted; nodes
// already hanging below a free-standing child keep their stored values.
//
// Returns INVALID_INPUT for nil nodes, NODE_DELETED if either node was
// reclaimed, ALREADY_ATTACHED if child has a parent or is the root, and
// NOT_IN_LAYOUT if parent is not reachable from the root (which also
// prevents attaching a branch below one of its own descendants).
func (l *Layout) AddChild(parent, child *Node) error {
	if parent == nil || child == nil {
		return errors.New(errors.ErrCodeInvalidInput, "parent and child must not be nil")
	}
	if parent.deleted {
		return errors.New(errors.ErrCodeNodeDeleted, "parent %q was deleted", parent.name)
	}
	if child.deleted {
		return errors.New(errors.ErrCodeNodeDeleted, "child %q was deleted", child.name)
	}
	if child.parent != nil {
		return errors.New(errors.ErrCodeAlreadyAttached, "node %q already has parent %q", child.name, child.parent.name)
	}
	if child == l.root {
		return errors.New(errors.ErrCodeAlreadyAttached, "node %q is the layout root", child.name)
	}
	if !l.contains(parent) {
		return errors.New(errors.ErrCodeNotInLayout, "parent %q is not part of this layout", parent.name)
	}

	parent.children = append(parent.children, child)
	child.parent = parent
	child.pos = child.pos.Add(parent.pos)

	depth := child.Depth()
	l.logger.Debug("attached node", "parent", parent.name, "child", child.name, "pos", child.pos, "depth", depth)
	observability.Tree().OnAttach(parent.name, child.name, depth)
	return nil
}

// UpdatePosition moves node so that it sits at pos relative to its
// parent's stored position, shifting every descendant by the same delta:
//
//	delta = parent.Position() + pos - node.Position()
//
// Repeating the call with the same pos while the parent stays put is a
// zero shift.
//
// Returns INVALID_INPUT for a nil node, NODE_DELETED for a reclaimed node,
// ROOT_NODE for the root (it has no parent to offset against),
// NOT_ATTACHED for a free-standing node and NOT_IN_LAYOUT for a node of
// another tree.
func (l *Layout) UpdatePosition(node *Node, pos Position) error {
	if node == nil {
		return errors.New(errors.ErrCodeInvalidInput, "node must not be nil")
	}
	if node.deleted {
		return errors.New(errors.ErrCodeNodeDeleted, "node %q was deleted", node.name)
	}
	if node == l.root {
		return errors.New(errors.ErrCodeRootNode, "cannot reposition root %q relative to a parent", node.name)
	}
	if node.parent == nil {
		return errors.New(errors.ErrCodeNotAttached, "node %q has no parent", node.name)
	}
	if !l.contains(node) {
		return errors.New(errors.ErrCodeNotInLayout, "node %q is not part of this layout", node.name)
	}

	delta := node.parent.pos.Add(pos).Sub(node.pos)
	moved := node.Shift(delta.X, delta.Y)
	l.logger.Debug("updated position", "node", node.name, "delta", delta, "moved", moved)
	return nil
}

// RemoveBranch unlinks node from its parent and reclaims its branch with
// [DeleteBranch]. It returns the number of nodes in the branch. node itself
// remains a valid, free-standing, childless node.
func (l *Layout) RemoveBranch(node *Node) (int, error) {
	if node == nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "node must not be nil")
	}
	if node.deleted {
		return 0, errors.New(errors.ErrCodeNodeDeleted, "node %q was deleted", node.name)
	}
	if node == l.root {
		return 0, errors.New(errors.ErrCodeRootNode, "cannot remove root %q", node.name)
	}
	if node.parent == nil {
		return 0, errors.New(errors.ErrCodeNotAttached, "node %q has no parent", node.name)
	}
	if !l.contains(node) {
		return 0, errors.New(errors.ErrCodeNotInLayout, "node %q is not part of this layout", node.name)
	}

	p := node.parent
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == node })
	node.parent = nil

	n := DeleteBranch(node)
	l.logger.Debug("removed branch", "node", node.name, "parent", p.name, "released", n)
	return n, nil
}

// Len returns the number of nodes in the tree, root included.
func (l *Layout) Len() int {
	n := 0
	walk(l.root, func(*Node, int) bool {
		n++
		return true
	})
	return n
}

// Walk visits every node of the tree in pre-order. See [Node.Walk].
func (l *Layout) Walk(fn func(n *Node, depth int) bool) {
	walk(l.root, fn)
}

// contains reports whether n's ancestor chain ends at the layout root.
func (l *Layout) contains(n *Node) bool {
	if l.root == nil {
		return false
	}
	for n.parent != nil {
		n = n.parent
	}
	return n == l.root
}
