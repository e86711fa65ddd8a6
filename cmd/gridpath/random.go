package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/mapgen"
)

func newRandomCmd(a *app) *cobra.Command {
	var size int
	var seed int64
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Solve a striped map between two random walkable cells",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("size") {
				a.cfg.Random.Size = size
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Random.Seed = seed
			}
			return a.runRandom(a.cfg.Random.Size)
		},
	}
	cmd.Flags().IntVar(&size, "size", mapgen.DefaultSize, "side length of the square map")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	return cmd
}

// runRandom generates a striped map of the given size and solves it.
func (a *app) runRandom(size int) error {
	if size < 2 {
		return withExitCode(fmt.Errorf("map size %d too small (want ≥ 2)", size), exitUsage)
	}
	seed := a.cfg.Random.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("generating map", slog.Int("size", size), slog.Int64("seed", seed))

	g := mapgen.Striped(size)
	start, target, err := mapgen.RandomEndpoints(g, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nGenerated %dx%d map\n", size, size)
	_, err = a.solveAndReport(g, start, target)
	return err
}
