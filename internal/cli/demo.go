package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layouttree/pkg/layout"
	"github.com/matzehuels/layouttree/pkg/render/treeview"
)

// demoCommand creates the demo command, a guided tour of the tree operations.
func (c *CLI) demoCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through attaching, shifting, querying and deleting nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), loggerFromContext(cmd.Context()), plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors in tree output")
	return cmd
}

func runDemo(w io.Writer, logger *log.Logger, plain bool) error {
	var tv []treeview.Option
	if plain {
		tv = append(tv, treeview.WithPlain())
	}
	show := func(l *layout.Layout) {
		fmt.Fprintln(w, treeview.Render(l, tv...))
		fmt.Fprintln(w)
	}

	root := layout.NewNode("R", 0, layout.Pos(0, 0))
	l, err := layout.New(root, layout.WithLogger(logger))
	if err != nil {
		return err
	}

	printStep(w, 1, "Attach A at (10, 5) under R")
	a := layout.NewNode("A", 1, layout.Pos(10, 5))
	if err := l.AddChild(root, a); err != nil {
		return err
	}
	printKeyValue(w, "A", l.PositionForNode(a).String())
	show(l)

	printStep(w, 2, "Attach B at (1, 1) under A")
	b := layout.NewNode("B", 2, layout.Pos(1, 1))
	if err := l.AddChild(a, b); err != nil {
		return err
	}
	printKeyValue(w, "B", l.PositionForNode(b).String())
	show(l)

	printStep(w, 3, "Shift A by (2, 2)")
	moved := a.Shift(2, 2)
	logger.Debug("shifted branch", "node", a.Name(), "moved", moved)
	for _, n := range []*layout.Node{root, a, b} {
		printKeyValue(w, n.Name(), l.PositionForNode(n).String())
	}
	show(l)

	printStep(w, 4, "Move B to (5, 5) from A")
	if err := l.UpdatePosition(b, layout.Pos(5, 5)); err != nil {
		return err
	}
	printKeyValue(w, "B", l.PositionForNode(b).String())
	show(l)

	printStep(w, 5, "Look up a missing node")
	if _, ok := l.PositionForName("Z"); !ok {
		printWarning(w, "no node named %q", "Z")
	}
	if pos, ok := l.PositionForID(2); ok {
		printInfo(w, "id 2 is at %s", pos)
	}
	fmt.Fprintln(w)

	printStep(w, 6, "Delete the branch below A")
	visited := layout.DeleteBranch(a)
	printSuccess(w, "released %d node(s) below A, %d left in the tree", visited-1, l.Len())
	show(l)

	return nil
}
