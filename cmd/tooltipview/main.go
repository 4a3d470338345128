// Command tooltipview opens a small bar chart with a hover tooltip. It is used
// to try tooltip configurations by hand and to record scripted runs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tooltip"
)

type options struct {
	config string
	script string
	width  int
	height int
	debug  bool
	fps    bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "tooltipview",
		Short: "Preview tooltip placement and timing on a demo chart",
		Long: `tooltipview renders a bar chart and attaches a tooltip controller to it.

A YAML file given with --config overrides the placement, shifts, delays,
attributes and class name. A script given with --script drives the pointer
and takes screenshots, then exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "tooltip configuration file (YAML)")
	f.StringVarP(&opts.script, "script", "s", "", "pointer script to replay (YAML or JSON)")
	f.IntVar(&opts.width, "width", 640, "window width")
	f.IntVar(&opts.height, "height", 480, "window height")
	f.BoolVar(&opts.debug, "debug", false, "enable debug checks and frame logging")
	f.BoolVar(&opts.fps, "fps", false, "show the FPS overlay")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var partial tooltip.PartialConfig
	if opts.config != "" {
		p, err := tooltip.LoadConfigFile(opts.config)
		if err != nil {
			return err
		}
		partial = p
	}

	scene := tooltip.NewScene()
	scene.SetLogger(logger)
	scene.SetDebugMode(opts.debug)
	scene.ClearColor = tooltip.Color{R: 0.11, G: 0.12, B: 0.15, A: 1}
	scene.SetViewport(tooltip.Rect{Width: float64(opts.width), Height: float64(opts.height)})

	c := buildChart(scene, sampleData, float64(opts.width), float64(opts.height))

	partial.Components = []tooltip.Anchor{c.plot, c.legend}
	partial.Triggers = c.triggers()
	partial.Logger = logger
	partial.OnError = func(err error) {
		logger.Warn("tooltip content", "err", err)
	}

	ctrl, err := tooltip.NewController(scene, tooltip.MergeConfig(partial, tooltip.DefaultConfig()))
	if err != nil {
		return err
	}
	ctrl.Attach()
	defer ctrl.Dispose()

	rc := tooltip.RunConfig{
		Title:     "tooltipview",
		Width:     opts.width,
		Height:    opts.height,
		ShowFPS:   opts.fps,
		Resizable: true,
	}
	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script %q: %w", opts.script, err)
		}
		runner, err := tooltip.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
		rc.ExitOnScriptEnd = true
	}
	return tooltip.Run(scene, rc)
}
