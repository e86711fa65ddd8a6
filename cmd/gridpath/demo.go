package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/mapgen"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in 10x10 battlefield",
		Args:  exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runDemo()
		},
	}
}

func (a *app) runDemo() error {
	fmt.Fprintln(a.out, "\nRunning demo with a simple 10x10 map...")
	g, start, target := mapgen.Demo()
	_, err := a.solveAndReport(g, start, target)
	return err
}
