// Package treeview renders a layout tree as indented terminal text.
//
// Each node is printed as "name #id (x, y)" using its stored position, in
// pre-order with children in insertion order:
//
//	window #0 (0, 0)
//	╰── panel #1 (10, 5)
//	    ╰── button #2 (11, 6)
//
// Output is styled with lipgloss; styling degrades to plain text when the
// output is not a terminal.
package treeview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/matzehuels/layouttree/pkg/layout"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleRoot       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleItem       = lipgloss.NewStyle()
	styleEnumerator = lipgloss.NewStyle().Foreground(colorDim)
	styleLocal      = lipgloss.NewStyle().Foreground(colorGray)
)

type config struct {
	local bool
	plain bool
}

// Option configures rendering.
type Option func(*config)

// WithLocal appends each node's offset from its parent, e.g. "+(1, 1)".
func WithLocal() Option { return func(c *config) { c.local = true } }

// WithPlain disables styling.
func WithPlain() Option { return func(c *config) { c.plain = true } }

// Render returns the text rendering of l. An empty layout renders as "".
func Render(l *layout.Layout, opts ...Option) string {
	if l == nil || l.Root() == nil {
		return ""
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(l.Root(), cfg).String()
}

// Label returns the text shown for n.
func Label(n *layout.Node, local bool) string {
	s := fmt.Sprintf("%s #%d %s", n.Name(), n.ID(), n.Position())
	if local && n.Parent() != nil {
		s += " +" + n.LocalPosition().String()
	}
	return s
}

func build(root *layout.Node, cfg config) *tree.Tree {
	t := tree.Root(label(root, cfg)).Enumerator(tree.RoundedEnumerator)
	if !cfg.plain {
		t = t.RootStyle(styleRoot).ItemStyle(styleItem).EnumeratorStyle(styleEnumerator)
	}
	for _, c := range root.Children() {
		if c.NumChildren() == 0 {
			t.Child(label(c, cfg))
			continue
		}
		t.Child(build(c, cfg))
	}
	return t
}

func label(n *layout.Node, cfg config) string {
	if cfg.plain || !cfg.local || n.Parent() == nil {
		return Label(n, cfg.local)
	}
	return Label(n, false) + " " + styleLocal.Render("+"+n.LocalPosition().String())
}
