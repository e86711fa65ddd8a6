package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates an unknown character in a textual grid.
	ErrBadSymbol = errors.New("grid: unknown map symbol")
)

// Map symbols shared by Parse and the renderers.
const (
	SymbolGround   = '.'
	SymbolObstacle = '#'
	SymbolStart    = 'S'
	SymbolTarget   = 'T'
	SymbolPath     = '*'
)

// Cell is a (row, col) coordinate. It is comparable and used as a map key.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Less orders cells row-major.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// neighborOffsets lists (dRow, dCol) in east, south, west, north order.
// Search output is only reproducible if this order never changes.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is a rectangular passability map. It is immutable once built.
type Grid struct {
	rows, cols int
	passable   []bool // row-major, len == rows*cols
}
