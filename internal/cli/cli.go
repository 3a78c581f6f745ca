// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the scaffoldview command-line interface.
//
// The commands classify window sizes and lay out demo scenes
// described by TOML fixtures:
//
//   - classify: print the window size class of a width and height
//   - frame: print the regions of a scene as a table, JSON or YAML
//   - render: draw a scene to PNG or SVG
//   - watch: print the frame of a fixture every time it changes
//   - preview: sketch a scene in the terminal, following its size
//
// All commands support --verbose (-v) for debug logging. The logger
// is passed to commands through their context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "scaffoldview",
		Short:        "Scaffoldview lays out responsive scaffolds",
		Long:         `Scaffoldview classifies window sizes and lays out a responsive app scaffold (top bar, navigation, snackbar, FAB and content) for scene fixtures, printing the placed regions or drawing them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.frameCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.previewCommand())

	return root
}
