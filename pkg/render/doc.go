// Package render groups the layout tree renderers.
//
//   - [treeview]: indented terminal text, styled with lipgloss
//   - [nodelink]: Graphviz DOT source and SVG, either ranked or pinned at
//     the stored positions
//
// Renderers only read the tree and never mutate it.
//
// [treeview]: github.com/matzehuels/layouttree/pkg/render/treeview
// [nodelink]: github.com/matzehuels/layouttree/pkg/render/nodelink
package render
