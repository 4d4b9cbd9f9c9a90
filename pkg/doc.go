// Package pkg holds the public libraries of layouttree.
//
//   - [layout]: the layout tree itself (nodes, attachment, shifting, lookup, deletion)
//   - [render]: text and Graphviz renderers for a layout
//   - [errors]: coded errors shared by every package
//   - [observability]: hooks for tracing tree mutations and renders
//   - [buildinfo]: version data injected at build time
//
// A minimal program builds a tree and queries it:
//
//	root := layout.NewNode("window", 0, layout.Pos(0, 0))
//	l, _ := layout.New(root)
//	panel := layout.NewNode("panel", 1, layout.Pos(10, 5))
//	_ = l.AddChild(root, panel)
//	pos, ok := l.PositionForName("panel") // (10, 5), true
//
// [layout]: github.com/matzehuels/layouttree/pkg/layout
// [render]: github.com/matzehuels/layouttree/pkg/render
// [errors]: github.com/matzehuels/layouttree/pkg/errors
// [observability]: github.com/matzehuels/layouttree/pkg/observability
// [buildinfo]: github.com/matzehuels/layouttree/pkg/buildinfo
package pkg
