package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/layouttree/pkg/layout"
)

// DefaultSpacing is the number of points per layout unit used for pinned
// diagrams when Options.Spacing is zero.
const DefaultSpacing = 36.0

// Options configures node-link diagram rendering.
type Options struct {
	// Pinned places every node at its stored position (neato) instead of
	// letting Graphviz rank the tree.
	Pinned bool

	// Spacing is the number of points per layout unit for pinned diagrams.
	Spacing float64

	// Local adds each node's offset from its parent to its label.
	Local bool
}

func (o Options) spacing() float64 {
	if o.Spacing <= 0 {
		return DefaultSpacing
	}
	return o.Spacing
}

// ToDOT converts a layout tree to Graphviz DOT source.
//
// Node identifiers are assigned in pre-order ("n0" for the root), so
// duplicate names or ids cannot collide in the output.
func ToDOT(l *layout.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	if opts.Pinned {
		buf.WriteString("  splines=true;\n")
	} else {
		buf.WriteString("  ranksep=0.5;\n")
		buf.WriteString("  nodesep=0.3;\n")
	}
	buf.WriteString("\n")

	ids := make(map[*layout.Node]string)
	var edges []string
	if l == nil {
		l = &layout.Layout{}
	}
	l.Walk(func(n *layout.Node, _ int) bool {
		id := "n" + strconv.Itoa(len(ids))
		ids[n] = id
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(fmtAttrs(n, opts), ", "))
		if p := n.Parent(); p != nil {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", ids[p], id))
		}
		return true
	})

	if len(edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *layout.Node, local bool) string {
	label := fmt.Sprintf("%s #%d\n%s", n.Name(), n.ID(), n.Position())
	if local && n.Parent() != nil {
		label += "\n+" + n.LocalPosition().String()
	}
	return label
}

func fmtAttrs(n *layout.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Local))}
	if n.Parent() == nil {
		attrs = append(attrs, "penwidth=2")
	}
	if opts.Pinned {
		s := opts.spacing()
		p := n.Position()
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"",
			strconv.FormatFloat(float64(p.X)*s, 'f', -1, 64),
			strconv.FormatFloat(float64(-p.Y)*s, 'f', -1, 64)))
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz. Pinned options select
// the neato engine so the pos attributes written by [ToDOT] are honored.
func RenderSVG(ctx context.Context, dot string, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	if opts.Pinned {
		gv.SetLayout(graphviz.NEATO)
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales with its
// container instead of carrying Graphviz's fixed pt dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
