package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the astar constructors.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")
)

// Options configures optional observation hooks on a PathFinder.
//
// OnExpand – called each time a cell is closed, with its final g.
// OnPush   – called each time a cell is (re)inserted into the frontier.
type Options struct {
	OnExpand func(c grid.Cell, g int)
	OnPush   func(c grid.Cell, g, f int)
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithOnExpand registers a hook run whenever a cell is finalized.
func WithOnExpand(fn func(c grid.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a hook run whenever a frontier entry is pushed.
func WithOnPush(fn func(c grid.Cell, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Cell, int) {},
		OnPush:   func(grid.Cell, int, int) {},
	}
}

// Result is the outcome of one Search call.
type Result struct {
	Path     []grid.Cell // start..target inclusive; nil when !Found
	Found    bool
	Expanded int // cells closed during the search
}

// Steps returns the number of moves on the path, or 0 when not found.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b grid.Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
