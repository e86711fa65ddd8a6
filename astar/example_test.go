package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ExamplePathFinder_FindPath routes a unit around a wall.
func ExamplePathFinder_FindPath() {
	g, _ := grid.Parse([]string{
		"...",
		"##.",
		"...",
	})
	pf, _ := astar.New(g)

	path, ok := pf.FindPath(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 0})
	fmt.Println(ok, len(path)-1)
	fmt.Println(path)
	// Output:
	// true 6
	// [(0, 0) (0, 1) (0, 2) (1, 2) (2, 2) (2, 1) (2, 0)]
}

// ExamplePathFinder_Search reports the unreachable case with statistics.
func ExamplePathFinder_Search() {
	g, _ := grid.Parse([]string{
		".#.",
		".#.",
	})
	pf, _ := astar.New(g)

	res := pf.Search(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 2})
	fmt.Printf("found=%v expanded=%d\n", res.Found, res.Expanded)
	// Output: found=false expanded=2
}
