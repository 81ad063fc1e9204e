package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/liquid"
)

// recordOpts are shared by the headless commands.
type recordOpts struct {
	tps      float64 // ticks per second of the fixed time step
	openOnly bool    // skip the close half of the cycle
}

func (o *recordOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.tps, "tps", 60, "ticks per second")
	cmd.Flags().BoolVar(&o.openOnly, "open-only", false, "record opening only")
}

func (o recordOpts) record(ctx context.Context, scenePath string) ([]liquid.Frame, error) {
	if o.tps <= 0 {
		return nil, fmt.Errorf("--tps must be > 0")
	}
	scene, err := LoadScene(scenePath)
	if err != nil {
		return nil, err
	}
	prog := newProgress(loggerFromContext(ctx))
	frames, err := scene.Record(1/o.tps, !o.openOnly)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Recorded %d frames", len(frames)))
	return frames, nil
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	recordOpts
	output    string // output directory
	every     int    // export one frame in every N
	width     int    // image width, 0 to fit
	height    int    // image height, 0 to fit
	noCaption bool   // omit the caption line
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{output: "frames", every: 1}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Record an open/close cycle and write PNG frames",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), sceneArg(args), opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().IntVar(&opts.every, "every", opts.every, "export one frame in every N")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width (0 fits the animation)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height (0 fits the animation)")
	cmd.Flags().BoolVar(&opts.noCaption, "no-caption", false, "omit frame captions")

	return cmd
}

func runRender(ctx context.Context, scenePath string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	frames, err := opts.record(ctx, scenePath)
	if err != nil {
		return err
	}

	exp := liquid.DefaultExportOptions()
	exp.Width, exp.Height = opts.width, opts.height
	exp.Every = opts.every
	exp.Caption = !opts.noCaption

	prog := newProgress(logger)
	paths, err := liquid.ExportPNG(frames, opts.output, exp)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d images to %s", len(paths), opts.output))
	return nil
}
