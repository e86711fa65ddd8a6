package grid

import "fmt"

// New constructs a Grid from a rectangular 2D slice where values[r][c]
// reports whether cell (r, c) is passable. It deep-copies the input.
// An empty slice yields a 0×0 grid on which every position is invalid.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func New(values [][]bool) (*Grid, error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	passable := make([]bool, 0, rows*cols)
	for _, row := range values {
		passable = append(passable, row...)
	}

	return &Grid{rows: rows, cols: cols, passable: passable}, nil
}

// Open returns a rows×cols grid with every cell passable.
// Negative dimensions are treated as zero.
func Open(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	passable := make([]bool, rows*cols)
	for i := range passable {
		passable[i] = true
	}
	return &Grid{rows: rows, cols: cols, passable: passable}
}

// Parse builds a Grid from text rows using the map symbols: '#' is an
// obstacle, while '.', 'S', 'T' and '*' are passable ground.
func Parse(lines []string) (*Grid, error) {
	values := make([][]bool, len(lines))
	for r, line := range lines {
		row := make([]bool, 0, len(line))
		for c, ch := range line {
			switch ch {
			case SymbolObstacle:
				row = append(row, false)
			case SymbolGround, SymbolStart, SymbolTarget, SymbolPath:
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrBadSymbol, ch, r, c)
			}
		}
		values[r] = row
	}
	return New(values)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsValidPosition reports whether (row, col) is in bounds and passable.
// Out-of-range coordinates are simply invalid, never a fault.
// Complexity: O(1).
func (g *Grid) IsValidPosition(row, col int) bool {
	return g.InBounds(row, col) && g.passable[g.index(row, col)]
}

// Neighbors returns the valid orthogonal neighbours of (row, col) in
// east, south, west, north order.
// Complexity: O(1).
func (g *Grid) Neighbors(row, col int) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if g.IsValidPosition(nr, nc) {
			out = append(out, Cell{Row: nr, Col: nc})
		}
	}
	return out
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, ok := range g.passable {
		if ok {
			n++
		}
	}
	return n
}

// PassableCells lists all passable cells in row-major order.
func (g *Grid) PassableCells() []Cell {
	out := make([]Cell, 0, g.PassableCount())
	for i, ok := range g.passable {
		if ok {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// index maps (row, col) to a row-major index: row*cols + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
