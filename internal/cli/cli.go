package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layouttree/pkg/buildinfo"
	"github.com/matzehuels/layouttree/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "layouttree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Before any subcommand runs, the logger is attached to the command context
// and registered as the observability sink.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Layouttree builds, moves and renders hierarchical layout trees",
		Long:          `Layouttree is a CLI for inspecting hierarchical layout trees: nodes placed relative to their parents, moved as whole branches, and queried by name or id.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.demoCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Exit codes returned by [Report].
const (
	ExitError = 1 // runtime failure
	ExitUsage = 2 // bad flags or input
)

// Report prints err to w without its code prefix and returns the process
// exit code for it.
func Report(w io.Writer, err error) int {
	printError(w, "%s", errors.UserMessage(err))
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidName, errors.ErrCodeInvalidFormat:
		return ExitUsage
	default:
		return ExitError
	}
}
