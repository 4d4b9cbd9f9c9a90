package layout

import "testing"

func TestDepthFirstSearch(t *testing.T) {
	_, nodes := buildSample(t)
	root := nodes["root"]

	tests := []struct {
		name  string
		match Matcher
		want  string
		found bool
	}{
		{name: "root by name", match: ByName("root"), want: "root", found: true},
		{name: "leaf by name", match: ByName("article"), want: "article", found: true},
		{name: "by id", match: ByID(3), want: "menu", found: true},
		{name: "name or id, name hits", match: NameOrID("logo", -7), want: "logo", found: true},
		{name: "name or id, id hits", match: NameOrID("nope", 4), want: "body", found: true},
		{name: "name or id, first in pre-order", match: NameOrID("article", 1), want: "header", found: true},
		{name: "missing name", match: ByName("footer"), found: false},
		{name: "missing id", match: ByID(99), found: false},
		{name: "exact name only", match: ByName("Header"), found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := DepthFirstSearch(root, tt.match)
			if ok != tt.found {
				t.Fatalf("DepthFirstSearch() found = %v, want %v", ok, tt.found)
			}
			if !ok {
				if n != nil {
					t.Errorf("DepthFirstSearch() node = %v, want nil", n)
				}
				return
			}
			if n.Name() != tt.want {
				t.Errorf("DepthFirstSearch() = %q, want %q", n.Name(), tt.want)
			}
		})
	}
}

func TestNameOrIDEmptyNameSkipsNameCheck(t *testing.T) {
	root := NewNode("", 0, Pos(0, 0))
	l := mustNew(t, root)
	target := NewNode("t", 7, Pos(1, 1))
	mustAdd(t, l, root, target)

	n, ok := DepthFirstSearch(root, NameOrID("", 7))
	if !ok || n != target {
		t.Errorf("DepthFirstSearch(NameOrID(\"\", 7)) = %v, %v; want node with id 7", n, ok)
	}

	if n, ok := DepthFirstSearch(root, NameOrID("", 99)); ok {
		t.Errorf("DepthFirstSearch(NameOrID(\"\", 99)) = %v, want no match", n)
	}

	// ByName still matches an unnamed node explicitly.
	if n, ok := DepthFirstSearch(root, ByName("")); !ok || n != root {
		t.Errorf("DepthFirstSearch(ByName(\"\")) = %v, %v; want root", n, ok)
	}
}

func TestDepthFirstSearchFirstMatchWins(t *testing.T) {
	root := NewNode("root", 0, Pos(0, 0))
	l := mustNew(t, root)
	left := NewNode("left", 1, Pos(0, 0))
	mustAdd(t, l, root, left)
	deep := NewNode("dup", 2, Pos(1, 0))
	mustAdd(t, l, left, deep)
	shallow := NewNode("dup", 3, Pos(2, 0))
	mustAdd(t, l, root, shallow)

	// Pre-order reaches left's subtree before root's second child.
	n, ok := DepthFirstSearch(root, ByName("dup"))
	if !ok || n != deep {
		t.Errorf("DepthFirstSearch() = %v, want the node under left", n)
	}
}

func TestDepthFirstSearchStopsAtMatch(t *testing.T) {
	_, nodes := buildSample(t)

	calls := 0
	n, ok := DepthFirstSearch(nodes["root"], func(n *Node) bool {
		calls++
		return n.Name() == "logo"
	})
	if !ok || n.Name() != "logo" {
		t.Fatalf("DepthFirstSearch() = %v, %v", n, ok)
	}
	if calls != 3 {
		t.Errorf("matcher called %d times, want 3", calls)
	}
}

func TestDepthFirstSearchNilRoot(t *testing.T) {
	if n, ok := DepthFirstSearch(nil, ByID(0)); ok || n != nil {
		t.Errorf("DepthFirstSearch(nil) = %v, %v; want nil, false", n, ok)
	}
}

func TestSearchByIDAndNameAgree(t *testing.T) {
	l, nodes := buildSample(t)

	for name, node := range nodes {
		byName, ok := l.FindByName(name)
		if !ok {
			t.Fatalf("FindByName(%q) not found", name)
		}
		byID, ok := l.FindByID(node.ID())
		if !ok {
			t.Fatalf("FindByID(%d) not found", node.ID())
		}
		if byName != byID || byName != node {
			t.Errorf("%s: FindByName = %p, FindByID = %p, want %p", name, byName, byID, node)
		}
	}

	for _, id := range []int{-1, 6, 1000} {
		if n, ok := l.FindByID(id); ok {
			t.Errorf("FindByID(%d) = %q, want not found", id, n.Name())
		}
	}
}

func TestPositionQueries(t *testing.T) {
	l, nodes := buildSample(t)

	tests := []struct {
		name string
		id   int
		want Position
	}{
		{name: "root", id: 0, want: Pos(0, 0)},
		{name: "header", id: 1, want: Pos(0, 0)},
		{name: "logo", id: 2, want: Pos(2, 1)},
		{name: "menu", id: 3, want: Pos(40, 1)},
		{name: "body", id: 4, want: Pos(0, 10)},
		{name: "article", id: 5, want: Pos(4, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := l.PositionForName(tt.name); !ok || got != tt.want {
				t.Errorf("PositionForName() = %v, %v; want %v, true", got, ok, tt.want)
			}
			if got, ok := l.PositionForID(tt.id); !ok || got != tt.want {
				t.Errorf("PositionForID() = %v, %v; want %v, true", got, ok, tt.want)
			}
			if got := l.PositionForNode(nodes[tt.name]); got != tt.want {
				t.Errorf("PositionForNode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionQueryMiss(t *testing.T) {
	l, _ := buildSample(t)

	// A successful query must not leak into a later miss.
	if _, ok := l.PositionForName("menu"); !ok {
		t.Fatal("PositionForName(menu) not found")
	}
	if got, ok := l.PositionForName("footer"); ok || got != (Position{}) {
		t.Errorf("PositionForName(footer) = %v, %v; want zero, false", got, ok)
	}
	if got, ok := l.PositionForID(77); ok || got != (Position{}) {
		t.Errorf("PositionForID(77) = %v, %v; want zero, false", got, ok)
	}
}

func TestPositionForIDIgnoresNames(t *testing.T) {
	root := NewNode("root", 0, Pos(0, 0))
	l := mustNew(t, root)
	mustAdd(t, l, root, NewNode("-1", 1, Pos(9, 9)))

	if got, ok := l.PositionForID(5); ok {
		t.Errorf("PositionForID(5) = %v, want not found", got)
	}
}

func TestQueriesAfterMove(t *testing.T) {
	l, nodes := buildSample(t)

	if err := l.UpdatePosition(nodes["body"], Pos(0, 20)); err != nil {
		t.Fatalf("UpdatePosition() error = %v", err)
	}
	if got, _ := l.PositionForName("article"); got != Pos(4, 22) {
		t.Errorf("PositionForName(article) = %v, want (4, 22)", got)
	}
	if got, _ := l.PositionForID(2); got != Pos(2, 1) {
		t.Errorf("PositionForID(2) = %v, want unchanged (2, 1)", got)
	}
}
