// Package mapgen produces synthetic grids for demos, fuzzing and benchmarks.
package mapgen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// DefaultSize is the side length used by Striped when none is given.
const DefaultSize = 32

// Stripe geometry: every stripeEvery-th row is a wall with a gap in every
// gapEvery-th column.
const (
	stripeEvery = 4
	gapEvery    = 8
)

// ErrNotEnoughSpace indicates fewer than two passable cells to pick from.
var ErrNotEnoughSpace = errors.New("mapgen: not enough space for start and target")

// Striped returns a size×size grid where each row i with i%4 == 0 is an
// obstacle except in columns j with j%8 == 0. Non-positive sizes yield an
// empty grid.
func Striped(size int) *grid.Grid {
	if size < 0 {
		size = 0
	}
	vals := make([][]bool, size)
	for i := range vals {
		vals[i] = make([]bool, size)
		for j := range vals[i] {
			vals[i][j] = i%stripeEvery != 0 || j%gapEvery == 0
		}
	}
	g, _ := grid.New(vals) // rectangular by construction
	return g
}

// RandomEndpoints picks two distinct passable cells uniformly at random.
func RandomEndpoints(g *grid.Grid, rng *rand.Rand) (start, target grid.Cell, err error) {
	cells := g.PassableCells()
	if len(cells) < 2 {
		return grid.Cell{}, grid.Cell{}, ErrNotEnoughSpace
	}
	i := rng.Intn(len(cells))
	j := rng.Intn(len(cells) - 1)
	if j >= i {
		j++
	}
	return cells[i], cells[j], nil
}

// demoRows is the fixed 10×10 battlefield used by the demo command.
var demoRows = []string{
	"....##....",
	".#..##.#..",
	".#.....#..",
	".#.###.#..",
	".......#..",
	".#####.#..",
	".......#..",
	".#.#####..",
	".#........",
	"..........",
}

// Demo returns the demo battlefield with its start (0,0) and target (9,9).
func Demo() (g *grid.Grid, start, target grid.Cell) {
	g, _ = grid.Parse(demoRows) // static, well-formed
	return g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 9, Col: 9}
}
