// Package cli implements the liquidbutton command-line interface.
//
// The commands load a scene file (or a built-in default scene), then either
// open the widget in a window or run the cascade headlessly with a fixed
// time step to trace, export or inspect every frame.
//
// # Commands
//
//   - run: open a window with the interactive button
//   - render: record an open/close cycle and write PNG frames
//   - trace: log one line per recorded frame
//   - inspect: step through a recorded cycle in a terminal UI
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context and is also installed as the widget
// package's logger.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/liquid"
)

var (
	version = "dev" // semantic version
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the liquidbutton CLI with ctx and returns an error if any
// command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "liquidbutton",
		Short:        "liquidbutton runs and records liquid cascading buttons",
		Long:         `liquidbutton opens a liquid cascading button in a window, or records its open/close animation headlessly to trace, export or inspect frame by frame.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			liquid.SetLogger(logger.WithPrefix("liquid"))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("liquidbutton %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newInspectCmd())

	return root
}

// sceneArg returns the optional scene file argument.
func sceneArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
