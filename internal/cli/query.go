package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layouttree/pkg/errors"
	"github.com/matzehuels/layouttree/pkg/layout"
)

type queryOpts struct {
	tree  treeOpts
	name  string
	id    int
	local bool
}

// queryCommand creates the query command, which prints one node's position.
func (c *CLI) queryCommand() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the position of a node found by name or id",
		Example: `  layouttree query -n root:0::0,0 -n panel:1:root:10,5 --name panel
  layouttree query -n root:0::0,0 -n panel:1:root:10,5 --shift panel=2,2 --id 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byID := cmd.Flags().Changed("id")
			return runQuery(cmd.Context(), cmd.OutOrStdout(), &opts, byID)
		},
	}

	addTreeFlags(cmd, &opts.tree)
	cmd.Flags().StringVar(&opts.name, "name", "", "node name to look up")
	cmd.Flags().IntVar(&opts.id, "id", 0, "node id to look up")
	cmd.Flags().BoolVar(&opts.local, "local", false, "also print the offset from the parent")
	cmd.MarkFlagsMutuallyExclusive("name", "id")
	cmd.MarkFlagsOneRequired("name", "id")

	return cmd
}

func runQuery(ctx context.Context, w io.Writer, opts *queryOpts, byID bool) error {
	l, err := opts.tree.build(loggerFromContext(ctx))
	if err != nil {
		return err
	}

	var (
		n   *layout.Node
		ok  bool
		key string
	)
	if byID {
		n, ok = l.FindByID(opts.id)
		key = "id " + strconv.Itoa(opts.id)
	} else {
		n, ok = l.FindByName(opts.name)
		key = strconv.Quote(opts.name)
	}
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "no node with %s", key)
	}

	printKeyValue(w, n.Name(), l.PositionForNode(n).String())
	if opts.local {
		printKeyValue(w, "local", n.LocalPosition().String())
	}
	return nil
}
