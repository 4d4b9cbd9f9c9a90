package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layouttree/pkg/errors"
	"github.com/matzehuels/layouttree/pkg/layout"
)

// nodeSpec is one --node flag: "name:id:parent:x,y". The first node has an
// empty parent and becomes the root.
type nodeSpec struct {
	name   string
	id     int
	parent string
	pos    layout.Position
}

// pointSpec is one --move or --shift flag: "name=x,y".
type pointSpec struct {
	name string
	pos  layout.Position
}

// treeOpts holds the flags shared by commands that build a tree.
type treeOpts struct {
	nodes   []string
	moves   []string
	shifts  []string
	deletes []string
	removes []string
}

func addTreeFlags(cmd *cobra.Command, opts *treeOpts) {
	cmd.Flags().StringArrayVarP(&opts.nodes, "node", "n", nil, `node as "name:id:parent:x,y" (first node is the root, with empty parent)`)
	cmd.Flags().StringArrayVar(&opts.moves, "move", nil, `set a node's offset from its parent: "name=x,y"`)
	cmd.Flags().StringArrayVar(&opts.shifts, "shift", nil, `shift a node and its branch: "name=dx,dy"`)
	cmd.Flags().StringArrayVar(&opts.deletes, "delete", nil, "delete the descendants of a node")
	cmd.Flags().StringArrayVar(&opts.removes, "remove", nil, "remove a node and its descendants from the tree")
	_ = cmd.MarkFlagRequired("node")
}

// build constructs the layout and applies moves, shifts, deletes and
// removes in that order.
func (o *treeOpts) build(logger *log.Logger) (*layout.Layout, error) {
	specs := make([]nodeSpec, 0, len(o.nodes))
	for _, s := range o.nodes {
		spec, err := parseNodeSpec(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	l, err := buildLayout(specs, logger)
	if err != nil {
		return nil, err
	}

	for _, s := range o.moves {
		p, err := parsePointSpec(s)
		if err != nil {
			return nil, err
		}
		n, err := findNode(l, p.name)
		if err != nil {
			return nil, err
		}
		if err := l.UpdatePosition(n, p.pos); err != nil {
			return nil, err
		}
	}

	for _, s := range o.shifts {
		p, err := parsePointSpec(s)
		if err != nil {
			return nil, err
		}
		n, err := findNode(l, p.name)
		if err != nil {
			return nil, err
		}
		n.Shift(p.pos.X, p.pos.Y)
	}

	for _, name := range o.deletes {
		n, err := findNode(l, name)
		if err != nil {
			return nil, err
		}
		layout.DeleteBranch(n)
	}

	for _, name := range o.removes {
		n, err := findNode(l, name)
		if err != nil {
			return nil, err
		}
		if _, err := l.RemoveBranch(n); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// buildLayout roots a layout at specs[0] and attaches the rest in order.
// Parents are resolved by name, so a parent must precede its children.
func buildLayout(specs []nodeSpec, logger *log.Logger) (*layout.Layout, error) {
	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "at least one --node is required")
	}
	if specs[0].parent != "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "first node %q must be the root (empty parent)", specs[0].name)
	}

	root := specs[0]
	l, err := layout.New(layout.NewNode(root.name, root.id, root.pos), layout.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	for _, s := range specs[1:] {
		if s.parent == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %q needs a parent; only the first node is the root", s.name)
		}
		parent, err := findNode(l, s.parent)
		if err != nil {
			return nil, err
		}
		if err := l.AddChild(parent, layout.NewNode(s.name, s.id, s.pos)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func findNode(l *layout.Layout, name string) (*layout.Node, error) {
	n, ok := l.FindByName(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no node named %q", name)
	}
	return n, nil
}

// parseNodeSpec parses "name:id:parent:x,y".
func parseNodeSpec(s string) (nodeSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return nodeSpec{}, errors.New(errors.ErrCodeInvalidInput, "node %q: want name:id:parent:x,y", s)
	}

	name, idStr, parent, posStr := parts[0], parts[1], parts[2], parts[3]
	if err := errors.ValidateNodeName(name); err != nil {
		return nodeSpec{}, err
	}
	if parent != "" {
		if err := errors.ValidateNodeName(parent); err != nil {
			return nodeSpec{}, err
		}
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nodeSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q: bad id %q", name, idStr)
	}

	pos, err := parsePoint(posStr)
	if err != nil {
		return nodeSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q: bad position", name)
	}

	return nodeSpec{name: name, id: id, parent: parent, pos: pos}, nil
}

// parsePointSpec parses "name=x,y".
func parsePointSpec(s string) (pointSpec, error) {
	name, posStr, ok := strings.Cut(s, "=")
	if !ok {
		return pointSpec{}, errors.New(errors.ErrCodeInvalidInput, "%q: want name=x,y", s)
	}
	if err := errors.ValidateNodeName(name); err != nil {
		return pointSpec{}, err
	}
	pos, err := parsePoint(posStr)
	if err != nil {
		return pointSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "%q: bad position", s)
	}
	return pointSpec{name: name, pos: pos}, nil
}

// parsePoint parses "x,y" with optional surrounding spaces.
func parsePoint(s string) (layout.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return layout.Position{}, errors.New(errors.ErrCodeInvalidInput, "want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return layout.Position{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return layout.Position{}, err
	}
	return layout.Pos(x, y), nil
}
