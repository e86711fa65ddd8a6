package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/tilemap"
)

func newSolveCmd(a *app) *cobra.Command {
	var outFile, pngFile string
	cmd := &cobra.Command{
		Use:   "solve MAP.json",
		Short: "Solve a Tiled JSON map (start=0, target=8, obstacle=3)",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runSolve(args[0], outFile, pngFile)
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "write the map with the path tagged as 5 to this file")
	cmd.Flags().StringVar(&pngFile, "png", "", "write a PNG rendering to this file")
	return cmd
}

// runSolve loads a tile map, solves it and optionally exports the result.
func (a *app) runSolve(mapFile, outFile, pngFile string) error {
	m, path, err := a.solveMap(mapFile)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := a.saveMap(m, outFile, path); err != nil {
			return err
		}
	}
	if pngFile != "" {
		start, target, _ := m.Endpoints()
		if err := a.writePNG(pngFile, m.Grid, path, start, target); err != nil {
			return err
		}
	}
	return nil
}

// solveMap loads mapFile and reports the route between its endpoints.
func (a *app) solveMap(mapFile string) (*tilemap.Map, []grid.Cell, error) {
	m, err := tilemap.Load(mapFile)
	if err != nil {
		return nil, nil, err
	}
	start, target, err := m.Endpoints()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", mapFile, err)
	}
	fmt.Fprintf(a.out, "\nMap loaded: %dx%d\n", m.Grid.Rows(), m.Grid.Cols())

	path, err := a.solveAndReport(m.Grid, start, target)
	if err != nil {
		return nil, nil, err
	}
	return m, path, nil
}

// saveMap writes m with path tagged to outFile.
func (a *app) saveMap(m *tilemap.Map, outFile string, path []grid.Cell) error {
	if err := m.Save(outFile, path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Output saved to %s\n", outFile)
	a.logger.Info("map written", slog.String("file", outFile))
	return nil
}
