package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

const legend = "Visualization (S=Start, T=Target, *=Path, #=Obstacle, .=Ground):"

// solveAndReport runs one search and prints the outcome, the map and the
// step list. It returns the path, or errNoPath when there is none.
func (a *app) solveAndReport(g *grid.Grid, start, target grid.Cell) ([]grid.Cell, error) {
	fmt.Fprintf(a.out, "Start position: %v\n", start)
	fmt.Fprintf(a.out, "Target position: %v\n", target)

	pf, err := astar.New(g)
	if err != nil {
		return nil, err
	}
	began := time.Now()
	res := pf.Search(start, target)
	a.logger.Debug("search finished",
		slog.Bool("found", res.Found),
		slog.Int("steps", res.Steps()),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", time.Since(began)),
	)

	if !res.Found {
		a.logger.Info("target unreachable",
			slog.Int("regions", len(g.Regions())),
			slog.Int("expanded", res.Expanded),
		)
		fmt.Fprintln(a.out, "\nNo path found! Target is unreachable.")
		return nil, errNoPath
	}

	fmt.Fprintf(a.out, "\nPath found! Length: %d steps\n", res.Steps())
	fmt.Fprintf(a.out, "\n%s\n", legend)
	if err := render.ASCII(a.out, g, res.Path, &start, &target, render.Options{Color: a.cfg.Render.Color}); err != nil {
		return nil, err
	}
	fmt.Fprintln(a.out, "\nPath coordinates:")
	if err := render.Steps(a.out, res.Path); err != nil {
		return nil, err
	}
	return res.Path, nil
}

// writePNG renders the solved map to file.
func (a *app) writePNG(file string, g *grid.Grid, path []grid.Cell, start, target grid.Cell) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := render.PNG(f, g, path, &start, &target, a.cfg.Render.CellSize); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.logger.Info("image written", slog.String("file", file))
	return nil
}
