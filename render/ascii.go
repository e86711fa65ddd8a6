package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// Options controls text rendering.
type Options struct {
	// Color styles each symbol with ANSI colours via lipgloss.
	Color bool
}

// palette maps symbols to their colour style.
var palette = map[rune]lipgloss.Style{
	grid.SymbolGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	grid.SymbolObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Bold(true),
	grid.SymbolStart:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	grid.SymbolTarget:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	grid.SymbolPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// Symbol returns the legend character for cell c.
func Symbol(g *grid.Grid, c grid.Cell, onPath map[grid.Cell]bool, start, target *grid.Cell) rune {
	switch {
	case start != nil && c == *start:
		return grid.SymbolStart
	case target != nil && c == *target:
		return grid.SymbolTarget
	case onPath[c]:
		return grid.SymbolPath
	case g.IsValidPosition(c.Row, c.Col):
		return grid.SymbolGround
	default:
		return grid.SymbolObstacle
	}
}

// Lines renders the grid as plain text rows. start and target may be nil.
func Lines(g *grid.Grid, path []grid.Cell, start, target *grid.Cell) []string {
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	lines := make([]string, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		row := make([]rune, g.Cols())
		for col := range row {
			row[col] = Symbol(g, grid.Cell{Row: r, Col: col}, onPath, start, target)
		}
		lines[r] = string(row)
	}
	return lines
}

// ASCII writes the grid to w, one line per row.
func ASCII(w io.Writer, g *grid.Grid, path []grid.Cell, start, target *grid.Cell, opts Options) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(g, path, start, target) {
		if opts.Color {
			for _, ch := range line {
				bw.WriteString(palette[ch].Render(string(ch)))
			}
		} else {
			bw.WriteString(line)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Steps writes one "Step i: (row, col)" line per path cell.
func Steps(w io.Writer, path []grid.Cell) error {
	bw := bufio.NewWriter(w)
	for i, c := range path {
		fmt.Fprintf(bw, "  Step %d: %v\n", i, c)
	}
	return bw.Flush()
}
