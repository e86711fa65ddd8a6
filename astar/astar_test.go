// Package astar_test validates A* on small hand-built grids and on seeded
// random grids checked against a breadth-first oracle.
package astar_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// mustFinder parses text rows and binds a PathFinder to them.
func mustFinder(t testing.TB, lines ...string) *astar.PathFinder {
	t.Helper()
	g, err := grid.Parse(lines)
	require.NoError(t, err)
	pf, err := astar.New(g)
	require.NoError(t, err)
	return pf
}

// requireValidPath asserts endpoints, adjacency and passability.
func requireValidPath(t testing.TB, g *grid.Grid, path []grid.Cell, start, target grid.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, target, path[len(path)-1], "path must end at target")
	for i, c := range path {
		require.Truef(t, g.IsValidPosition(c.Row, c.Col), "step %d %v is not passable", i, c)
		if i > 0 {
			require.Truef(t, path[i-1].Adjacent(c), "steps %d→%d %v→%v not adjacent", i-1, i, path[i-1], c)
		}
	}
}

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNew_NilGrid(t *testing.T) {
	_, err := astar.New(nil)
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

// TestFindPath_SingleCell: 1×1 grid, start == target.
func TestFindPath_SingleCell(t *testing.T) {
	pf := mustFinder(t, ".")
	path, ok := pf.FindPath(grid.Cell{}, grid.Cell{})
	require.True(t, ok)
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}}, path)
}

// TestFindPath_OpenSquare: 3×3 open grid corner to corner. The fixed
// neighbour order and FIFO tie-break make the staircase reproducible.
func TestFindPath_OpenSquare(t *testing.T) {
	pf := mustFinder(t, "...", "...", "...")
	path, ok := pf.FindPath(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	require.True(t, ok)
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, path)
}

// TestFindPath_WallRow: a full wall row separates start from target.
func TestFindPath_WallRow(t *testing.T) {
	pf := mustFinder(t, "...", "###", "...")
	path, ok := pf.FindPath(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 0})
	assert.False(t, ok)
	assert.Nil(t, path)
}

// TestFindPath_CorridorDetour: the only route loops around a wall, so the
// path is three times the Manhattan distance.
func TestFindPath_CorridorDetour(t *testing.T) {
	pf := mustFinder(t,
		".#...",
		".#.#.",
		"...#.",
	)
	start, target := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2}
	path, ok := pf.FindPath(start, target)
	require.True(t, ok)
	assert.Equal(t, 2, astar.Manhattan(start, target))
	assert.Equal(t,
		[]grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 2}},
		path)
}

// ------------------------------------------------------------------------
// 3. Invalid endpoints
// ------------------------------------------------------------------------

func TestFindPath_InvalidEndpoints(t *testing.T) {
	pf := mustFinder(t, "..#", "...")
	cases := []struct {
		name          string
		start, target grid.Cell
	}{
		{"StartOnWall", grid.Cell{Row: 0, Col: 2}, grid.Cell{Row: 1, Col: 0}},
		{"TargetOnWall", grid.Cell{Row: 1, Col: 0}, grid.Cell{Row: 0, Col: 2}},
		{"StartNegative", grid.Cell{Row: -1, Col: 0}, grid.Cell{Row: 1, Col: 1}},
		{"TargetPastCols", grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 3}},
		{"TargetPastRows", grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 0}},
		{"BothWallSame", grid.Cell{Row: 0, Col: 2}, grid.Cell{Row: 0, Col: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := pf.FindPath(tc.start, tc.target)
			assert.False(t, ok)
			assert.Nil(t, path)
		})
	}
}

// TestFindPath_EmptyGrid: every position of a 0×0 grid is invalid.
func TestFindPath_EmptyGrid(t *testing.T) {
	g, err := grid.New(nil)
	require.NoError(t, err)
	pf, err := astar.New(g)
	require.NoError(t, err)
	_, ok := pf.FindPath(grid.Cell{}, grid.Cell{})
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 4. Properties on seeded random grids
// ------------------------------------------------------------------------

// randomGrid returns an rows×cols grid with the given wall density.
func randomGrid(t testing.TB, r *rand.Rand, rows, cols int, density float64) *grid.Grid {
	t.Helper()
	vals := make([][]bool, rows)
	for i := range vals {
		vals[i] = make([]bool, cols)
		for j := range vals[i] {
			vals[i][j] = r.Float64() >= density
		}
	}
	g, err := grid.New(vals)
	require.NoError(t, err)
	return g
}

// TestFindPath_MatchesBFS checks optimality, validity and unreachability
// against grid.Distance on many random instances.
func TestFindPath_MatchesBFS(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 150; trial++ {
		rows, cols := 1+r.Intn(14), 1+r.Intn(14)
		g := randomGrid(t, r, rows, cols, 0.3)
		pf, err := astar.New(g)
		require.NoError(t, err)

		cells := g.PassableCells()
		if len(cells) == 0 {
			continue
		}
		for q := 0; q < 10; q++ {
			start := cells[r.Intn(len(cells))]
			target := cells[r.Intn(len(cells))]

			want, reachable := g.Distance(start, target)
			path, ok := pf.FindPath(start, target)
			require.Equalf(t, reachable, ok, "trial %d %v→%v", trial, start, target)
			if !ok {
				require.Nil(t, path)
				continue
			}
			requireValidPath(t, g, path, start, target)
			require.Equalf(t, want, len(path)-1, "trial %d %v→%v", trial, start, target)
		}
	}
}

// TestFindPath_Deterministic repeats the same query and expects identical cells.
func TestFindPath_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	g := randomGrid(t, r, 30, 30, 0.2)
	pf, err := astar.New(g)
	require.NoError(t, err)
	cells := g.PassableCells()
	start, target := cells[0], cells[len(cells)-1]

	first, ok := pf.FindPath(start, target)
	for i := 0; i < 5; i++ {
		again, ok2 := pf.FindPath(start, target)
		require.Equal(t, ok, ok2)
		require.Equal(t, first, again)
	}
}

// TestFindPath_Concurrent shares one PathFinder across goroutines.
func TestFindPath_Concurrent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := randomGrid(t, r, 40, 40, 0.25)
	pf, err := astar.New(g)
	require.NoError(t, err)
	cells := g.PassableCells()

	type query struct{ start, target grid.Cell }
	queries := make([]query, 64)
	for i := range queries {
		queries[i] = query{cells[r.Intn(len(cells))], cells[r.Intn(len(cells))]}
	}

	var wg sync.WaitGroup
	got := make([]int, len(queries))
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q query) {
			defer wg.Done()
			path, ok := pf.FindPath(q.start, q.target)
			got[i] = -1
			if ok {
				got[i] = len(path) - 1
			}
		}(i, q)
	}
	wg.Wait()

	for i, q := range queries {
		want, ok := g.Distance(q.start, q.target)
		if !ok {
			want = -1
		}
		assert.Equalf(t, want, got[i], "query %d %v→%v", i, q.start, q.target)
	}
}

// ------------------------------------------------------------------------
// 5. Hooks and statistics
// ------------------------------------------------------------------------

// TestSearch_Hooks records expansions and checks the closed g values.
func TestSearch_Hooks(t *testing.T) {
	g, err := grid.Parse([]string{"....."})
	require.NoError(t, err)

	var expanded []grid.Cell
	pushes := 0
	pf, err := astar.New(g,
		astar.WithOnExpand(func(c grid.Cell, gv int) {
			assert.Equal(t, c.Col, gv, "g of a straight corridor equals the column")
			expanded = append(expanded, c)
		}),
		astar.WithOnPush(func(grid.Cell, int, int) { pushes++ }),
	)
	require.NoError(t, err)

	res := pf.Search(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 4})
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Steps())
	assert.Equal(t, 5, res.Expanded)
	assert.Len(t, expanded, 5)
	assert.Equal(t, 5, pushes)
}

// TestSearch_EarlyTermination: reaching the target must not drain the
// frontier, so far-away open cells are never expanded.
func TestSearch_EarlyTermination(t *testing.T) {
	pf := mustFinder(t,
		"..........",
		"..........",
		"..........",
	)
	res := pf.Search(grid.Cell{Row: 1, Col: 0}, grid.Cell{Row: 1, Col: 1})
	require.True(t, res.Found)
	assert.Equal(t, 2, res.Expanded)
}

// TestSearch_NotFoundStats: a failed search reports the region it explored.
func TestSearch_NotFoundStats(t *testing.T) {
	pf := mustFinder(t, "..#.")
	res := pf.Search(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 3})
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Steps())
	assert.Equal(t, 2, res.Expanded)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, astar.Manhattan(grid.Cell{Row: 2, Col: 2}, grid.Cell{Row: 2, Col: 2}))
	assert.Equal(t, 7, astar.Manhattan(grid.Cell{Row: -1, Col: 5}, grid.Cell{Row: 2, Col: 1}))
}
