// Package nodelink renders layout trees as node-link diagrams.
//
// # Overview
//
// Nodes appear as boxes labelled with their name, id and stored position,
// connected by parent → child arrows. Two placements are available:
//
//   - Hierarchical (default): Graphviz dot ranks the tree top to bottom
//   - Pinned: every node is fixed at its stored position and drawn with neato
//
// # Usage
//
// Convert a layout to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(lay, nodelink.Options{Pinned: true})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.Options{Pinned: true})
//
// The DOT source can also be written out and processed with external
// Graphviz tools.
//
// # Coordinates
//
// Layout positions grow rightwards and downwards like screen coordinates.
// Graphviz's y axis grows upwards, so pinned positions are emitted with y
// negated and scaled by [Options.Spacing] points per unit.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
