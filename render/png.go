package render

import (
	"errors"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/grid"
)

// DefaultCellSize is the PNG edge length of one grid cell, in pixels.
const DefaultCellSize = 16

// ErrCellSize indicates a non-positive PNG cell size.
var ErrCellSize = errors.New("render: cell size must be positive")

// rgb is a colour with float channels in [0, 1], as gg expects.
type rgb struct{ r, g, b float64 }

var pngPalette = map[rune]rgb{
	grid.SymbolGround:   {0.93, 0.91, 0.84},
	grid.SymbolObstacle: {0.30, 0.25, 0.20},
	grid.SymbolStart:    {0.15, 0.65, 0.25},
	grid.SymbolTarget:   {0.80, 0.15, 0.15},
	grid.SymbolPath:     {0.95, 0.75, 0.10},
}

// PNG draws the grid as an image of cellSize×cellSize squares and encodes
// it to w. Path cells are drawn as inset squares so the ground shows
// around them.
func PNG(w io.Writer, g *grid.Grid, path []grid.Cell, start, target *grid.Cell, cellSize int) error {
	if cellSize <= 0 {
		return ErrCellSize
	}
	width, height := g.Cols()*cellSize, g.Rows()*cellSize
	if width == 0 || height == 0 {
		width, height = 1, 1
	}
	dc := gg.NewContext(width, height)
	bg := pngPalette[grid.SymbolObstacle]
	dc.SetRGB(bg.r, bg.g, bg.b)
	dc.Clear()

	s := float64(cellSize)
	inset := s / 5
	for r, line := range Lines(g, path, start, target) {
		for c, ch := range []rune(line) {
			x, y := float64(c)*s, float64(r)*s
			base := ch
			if ch == grid.SymbolPath {
				base = grid.SymbolGround
			}
			col := pngPalette[base]
			dc.SetRGB(col.r, col.g, col.b)
			dc.DrawRectangle(x, y, s, s)
			dc.Fill()

			if ch == grid.SymbolPath {
				pc := pngPalette[grid.SymbolPath]
				dc.SetRGB(pc.r, pc.g, pc.b)
				dc.DrawRectangle(x+inset, y+inset, s-2*inset, s-2*inset)
				dc.Fill()
			}
		}
	}
	return dc.EncodePNG(w)
}
