package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/liquid"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	width   int    // window width in pixels
	height  int    // window height in pixels
	showFPS bool   // draw the FPS/TPS overlay
	debug   bool   // per-frame stats and chain checks
	script  string // JSON test script to drive the button
	shots   string // screenshot directory
}

func newRunCmd() *cobra.Command {
	opts := runOpts{width: 640, height: 480, shots: "screenshots"}

	cmd := &cobra.Command{
		Use:   "run [scene.toml]",
		Short: "Open a window with the liquid button",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), sceneArg(args), opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", opts.width, "window width")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "window height")
	cmd.Flags().BoolVar(&opts.showFPS, "fps", false, "show FPS/TPS overlay")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log per-frame stats and check chain invariants")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON test script to run")
	cmd.Flags().StringVar(&opts.shots, "screenshots", opts.shots, "screenshot directory")

	return cmd
}

func runWindow(ctx context.Context, scenePath string, opts runOpts) error {
	logger := loggerFromContext(ctx)

	scene, err := LoadScene(scenePath)
	if err != nil {
		return err
	}
	root := scene.Root()
	btn, err := liquid.NewButton(root.Center, root.Radius, scene.Config, scene.Source())
	if err != nil {
		return err
	}
	btn.Root().Color = root.Color
	btn.ClearColor = liquid.ColorWhite
	btn.ScreenshotDir = opts.shots
	btn.SetLogger(logger)
	btn.SetDebugMode(opts.debug)
	btn.Controller().OnSelect = func(i int) {
		name := ""
		if i < len(scene.Cells) {
			name = scene.Cells[i].Name
		}
		logger.Info("Selected", "index", i, "name", name)
	}

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := liquid.LoadTestScript(data)
		if err != nil {
			return err
		}
		btn.SetTestRunner(runner)
	}

	logger.Debug("Opening window", "cells", len(scene.Cells), "direction", scene.Config.Direction)
	return liquid.Run(btn, liquid.RunConfig{
		Title:   "liquidbutton",
		Width:   opts.width,
		Height:  opts.height,
		ShowFPS: opts.showFPS,
	})
}
