package layout

import (
	"strconv"

	"github.com/matzehuels/layouttree/pkg/observability"
)

// Matcher selects nodes during a search.
type Matcher func(*Node) bool

// ByName matches the node whose name equals name exactly.
func ByName(name string) Matcher {
	return func(n *Node) bool { return n.name == name }
}

// ByID matches the node with the given id.
func ByID(id int) Matcher {
	return func(n *Node) bool { return n.id == id }
}

// NameOrID matches a node whose name equals name or whose id equals id.
// An empty name disables the name check, so NameOrID("", id) behaves like
// ByID(id) even when the tree holds unnamed nodes.
func NameOrID(name string, id int) Matcher {
	return func(n *Node) bool { return (name != "" && n.name == name) || n.id == id }
}

// DepthFirstSearch returns the first node under root, in pre-order, that
// match accepts. The search is linear in the size of the tree and stops at
// the first hit. A nil root never matches.
func DepthFirstSearch(root *Node, match Matcher) (*Node, bool) {
	n, _ := search(root, match)
	return n, n != nil
}

func search(root *Node, match Matcher) (*Node, int) {
	var found *Node
	visited := 0
	walk(root, func(n *Node, _ int) bool {
		visited++
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found, visited
}

// FindByName returns the first node named name, searching from the root.
func (l *Layout) FindByName(name string) (*Node, bool) {
	return l.find("name="+name, ByName(name))
}

// FindByID returns the first node with the given id, searching from the root.
func (l *Layout) FindByID(id int) (*Node, bool) {
	return l.find("id="+strconv.Itoa(id), ByID(id))
}

func (l *Layout) find(key string, match Matcher) (*Node, bool) {
	n, visited := search(l.root, match)
	found := n != nil
	observability.Tree().OnLookup(key, found, visited)
	if l.logger != nil {
		l.logger.Debug("lookup", "key", key, "found", found, "visited", visited)
	}
	return n, found
}

// PositionForNode returns n's stored position.
func (l *Layout) PositionForNode(n *Node) Position { return n.pos }

// PositionForName returns the stored position of the node named name.
// The boolean is false, and the position zero, when no node has that name.
func (l *Layout) PositionForName(name string) (Position, bool) {
	n, ok := l.FindByName(name)
	if !ok {
		return Position{}, false
	}
	return n.pos, true
}

// PositionForID returns the stored position of the node with the given id.
// The boolean is false, and the position zero, when no node has that id.
func (l *Layout) PositionForID(id int) (Position, bool) {
	n, ok := l.FindByID(id)
	if !ok {
		return Position{}, false
	}
	return n.pos, true
}
