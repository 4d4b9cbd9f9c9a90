package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layouttree/pkg/errors"
	"github.com/matzehuels/layouttree/pkg/layout"
	"github.com/matzehuels/layouttree/pkg/observability"
	"github.com/matzehuels/layouttree/pkg/render/nodelink"
	"github.com/matzehuels/layouttree/pkg/render/treeview"
)

const (
	formatText = "text" // indented tree
	formatDOT  = "dot"  // Graphviz source
	formatSVG  = "svg"  // Graphviz-rendered drawing
)

var supportedFormats = []string{formatText, formatDOT, formatSVG}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	tree    treeOpts
	format  string  // output format: text, dot or svg
	output  string  // output file path; stdout when empty
	local   bool    // show offsets from the parent
	pinned  bool    // place nodes at their stored positions (dot/svg)
	spacing float64 // points per layout unit for pinned drawings
	plain   bool    // disable text styling
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatText, spacing: nodelink.DefaultSpacing}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a layout tree from flags and render it",
		Example: `  layouttree render -n root:0::0,0 -n panel:1:root:10,5 -n button:2:panel:1,1
  layouttree render -n root:0::0,0 -n panel:1:root:10,5 --shift panel=2,2 --local
  layouttree render -n root:0::0,0 -n panel:1:root:10,5 -f svg --pinned -o tree.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, supportedFormats); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts)
		},
	}

	addTreeFlags(cmd, &opts.tree)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.local, "local", false, "show each node's offset from its parent")
	cmd.Flags().BoolVar(&opts.pinned, "pinned", false, "draw nodes at their stored positions (dot, svg)")
	cmd.Flags().Float64Var(&opts.spacing, "spacing", opts.spacing, "points per layout unit for --pinned")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colors in text output")

	return cmd
}

// runRender writes the rendering to w, or to opts.output. Progress for the
// slow SVG path goes to errW.
func runRender(ctx context.Context, w, errW io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	l, err := opts.tree.build(logger)
	if err != nil {
		return err
	}

	var sp *Spinner
	if opts.format == formatSVG {
		sp = newSpinner(ctx, errW, "Running Graphviz...")
		sp.Start()
	}
	data, err := renderLayout(ctx, l, opts)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := w.Write(data); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %d nodes as %s", l.Len(), opts.format))
		return nil
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	prog.done(fmt.Sprintf("Rendered %d nodes as %s", l.Len(), opts.format))
	printFile(w, opts.output)
	return nil
}

// renderLayout renders l in opts.format, reporting through the render hooks.
func renderLayout(ctx context.Context, l *layout.Layout, opts *renderOpts) (data []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.format, l.Len())
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.format, len(data), time.Since(start), err)
	}()

	nl := nodelink.Options{Pinned: opts.pinned, Spacing: opts.spacing, Local: opts.local}

	switch opts.format {
	case formatText:
		var tv []treeview.Option
		if opts.local {
			tv = append(tv, treeview.WithLocal())
		}
		if opts.plain {
			tv = append(tv, treeview.WithPlain())
		}
		return []byte(treeview.Render(l, tv...) + "\n"), nil
	case formatDOT:
		return []byte(nodelink.ToDOT(l, nl)), nil
	case formatSVG:
		svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(l, nl), nl)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "format %q", opts.format)
	}
}
