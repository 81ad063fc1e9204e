package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/liquid"
)

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	recordOpts
	eventsOnly bool // print only frames that carry events
}

func newTraceCmd() *cobra.Command {
	var opts traceOpts

	cmd := &cobra.Command{
		Use:   "trace [scene.toml]",
		Short: "Print one line per recorded frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := opts.record(cmd.Context(), sceneArg(args))
			if err != nil {
				return err
			}
			writeTrace(cmd.OutOrStdout(), frames, opts.eventsOnly)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.eventsOnly, "events", false, "print only frames with cascade events")

	return cmd
}

// writeTrace prints frames, styling the state column.
func writeTrace(w io.Writer, frames []liquid.Frame, eventsOnly bool) {
	for _, f := range frames {
		if eventsOnly && len(f.Events) == 0 {
			continue
		}
		line := StyleState(f.State).Render(fmt.Sprintf("%-7s", f.State)) + " " + f.String()
		if len(f.Events) > 0 {
			line += " " + StyleDim.Render("["+formatEvents(f.Events)+"]")
		}
		fmt.Fprintln(w, line)
	}
}

func formatEvents(events []liquid.Event) string {
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = fmt.Sprintf("%s#%d", e.Type, e.Index)
	}
	return strings.Join(parts, " ")
}
