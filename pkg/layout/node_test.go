package layout

import "testing"

func TestPositionArithmetic(t *testing.T) {
	tests := []struct {
		name string
		p, q Position
		sum  Position
		diff Position
	}{
		{name: "origin", p: Pos(0, 0), q: Pos(0, 0), sum: Pos(0, 0), diff: Pos(0, 0)},
		{name: "positive", p: Pos(10, 5), q: Pos(1, 1), sum: Pos(11, 6), diff: Pos(9, 4)},
		{name: "negative", p: Pos(-3, 2), q: Pos(4, -8), sum: Pos(1, -6), diff: Pos(-7, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.q); got != tt.sum {
				t.Errorf("Add() = %v, want %v", got, tt.sum)
			}
			if got := tt.p.Sub(tt.q); got != tt.diff {
				t.Errorf("Sub() = %v, want %v", got, tt.diff)
			}
			if got := tt.p.Add(tt.q).Sub(tt.q); got != tt.p {
				t.Errorf("Add().Sub() = %v, want %v", got, tt.p)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if got := Pos(-4, 12).String(); got != "(-4, 12)" {
		t.Errorf("String() = %q, want %q", got, "(-4, 12)")
	}
	if !(Position{}).IsZero() || Pos(0, 1).IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestNodeInit(t *testing.T) {
	// Nodes can live in caller-managed storage.
	nodes := make([]Node, 3)
	nodes[0].Init("root", 0, Pos(1, 1))
	nodes[1].Init("a", 1, Pos(2, 0))
	nodes[2].Init("b", 2, Pos(0, 3))

	l := mustNew(t, &nodes[0])
	mustAdd(t, l, &nodes[0], &nodes[1])
	mustAdd(t, l, &nodes[1], &nodes[2])

	if got := nodes[2].Position(); got != Pos(3, 4) {
		t.Errorf("b.Position() = %v, want (3, 4)", got)
	}
	if nodes[2].Name() != "b" || nodes[2].ID() != 2 {
		t.Errorf("identity = %q/%d, want b/2", nodes[2].Name(), nodes[2].ID())
	}
	if got := nodes[2].Depth(); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
}

func TestNodeInitClearsState(t *testing.T) {
	n := NewNode("x", 1, Pos(0, 0))
	n.children = []*Node{NewNode("y", 2, Pos(0, 0))}
	n.deleted = true

	n.Init("z", 3, Pos(4, 4))

	if n.NumChildren() != 0 || n.IsDeleted() || n.Parent() != nil {
		t.Errorf("Init() left children=%d deleted=%v parent=%v", n.NumChildren(), n.IsDeleted(), n.Parent())
	}
	if n.Name() != "z" || n.ID() != 3 || n.Position() != Pos(4, 4) {
		t.Errorf("Init() identity = %q/%d/%v", n.Name(), n.ID(), n.Position())
	}
}

func TestLocalPositionWithoutParent(t *testing.T) {
	n := NewNode("free", 1, Pos(7, -2))
	if got := n.LocalPosition(); got != Pos(7, -2) {
		t.Errorf("LocalPosition() = %v, want (7, -2)", got)
	}
}

func TestShiftNil(t *testing.T) {
	var n *Node
	if got := n.Shift(1, 1); got != 0 {
		t.Errorf("Shift() on nil = %d, want 0", got)
	}
}
