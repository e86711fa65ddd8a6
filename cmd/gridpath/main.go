// Command gridpath finds shortest routes for battle units on tile maps.
//
// Usage:
//
//	gridpath                       interactive menu
//	gridpath solve MAP.json        solve a Tiled map (start=0, target=8, wall=3)
//	gridpath random --size 32      solve a striped random map
//	gridpath demo                  solve the built-in 10×10 battlefield
//	gridpath batch MAP QUERIES     answer many queries concurrently
//	gridpath serve --addr :8080    HTTP API with Prometheus metrics
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
)

// app carries state shared by every subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgPath  string
	logLevel string
	color    bool

	cfg    config.Config
	logger *slog.Logger
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeForError(err))
	}
}

// newRootCmd assembles the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest routes for battle units on tile maps",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(err, exitUsage)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	pf.BoolVar(&a.color, "color", false, "colour the map output")

	root.AddCommand(
		newSolveCmd(a),
		newRandomCmd(a),
		newDemoCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newMenuCmd(a),
	)
	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return withExitCode(err, exitUsage)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("color") {
		cfg.Render.Color = a.color
	}
	logger, err := newLogger(cfg.Log, a.errOut)
	if err != nil {
		return withExitCode(err, exitUsage)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// exactArgs is cobra.ExactArgs with a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withExitCode(cobra.ExactArgs(n)(cmd, args), exitUsage)
	}
}
