package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// PathFinder runs A* searches over a single grid. It holds a non-owning
// reference to the grid and no per-search state.
type PathFinder struct {
	g    *grid.Grid
	opts Options
}

// New binds a PathFinder to g, applying any functional options.
// Returns ErrNilGrid if g is nil.
func New(g *grid.Grid, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathFinder{g: g, opts: cfg}, nil
}

// FindPath returns a shortest path from start to target inclusive, or
// (nil, false) when either endpoint is invalid or the target cannot be
// reached.
func (pf *PathFinder) FindPath(start, target grid.Cell) ([]grid.Cell, bool) {
	res := pf.Search(start, target)
	return res.Path, res.Found
}

// Search is FindPath plus search statistics.
//
// Preconditions checked (in order):
//  1. start must be a valid position, else not found.
//  2. target must be a valid position, else not found.
//  3. start == target yields the one-cell path [start].
func (pf *PathFinder) Search(start, target grid.Cell) Result {
	if !pf.g.IsValidPosition(start.Row, start.Col) {
		return Result{}
	}
	if !pf.g.IsValidPosition(target.Row, target.Col) {
		return Result{}
	}
	if start == target {
		pf.opts.OnExpand(start, 0)
		return Result{Path: []grid.Cell{start}, Found: true, Expanded: 1}
	}

	r := &runner{
		g:        pf.g,
		opts:     pf.opts,
		target:   target,
		gScore:   make(map[grid.Cell]int),
		cameFrom: make(map[grid.Cell]grid.Cell),
		closed:   make(map[grid.Cell]bool),
	}
	r.init(start)
	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid
	opts     Options
	target   grid.Cell
	gScore   map[grid.Cell]int       // best known steps from start
	cameFrom map[grid.Cell]grid.Cell // predecessor on the best known path
	closed   map[grid.Cell]bool      // finalized cells
	pq       frontier
	seq      int
	expanded int
}

// init seeds the frontier with the start cell at g = 0.
func (r *runner) init(start grid.Cell) {
	heap.Init(&r.pq)
	r.gScore[start] = 0
	r.push(start, 0)
}

// push inserts a frontier entry for c with the given g.
func (r *runner) push(c grid.Cell, g int) {
	f := g + Manhattan(c, r.target)
	heap.Push(&r.pq, &frontierItem{cell: c, g: g, f: f, seq: r.seq})
	r.seq++
	r.opts.OnPush(c, g, f)
}

// process pops the lowest-f entry until the target is closed or the
// frontier is exhausted.
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.cell

		// stale duplicate of an already finalized cell
		if r.closed[u] {
			continue
		}
		r.closed[u] = true
		r.expanded++
		r.opts.OnExpand(u, item.g)

		if u == r.target {
			return Result{
				Path:     reconstructPath(r.cameFrom, u),
				Found:    true,
				Expanded: r.expanded,
			}
		}
		r.relax(u, item.g)
	}

	return Result{Expanded: r.expanded}
}

// relax offers g(u)+1 to every open or undiscovered neighbour of u.
// Only strict improvements are recorded, so predecessor links stay a tree.
func (r *runner) relax(u grid.Cell, gu int) {
	tentative := gu + 1
	for _, v := range r.g.Neighbors(u.Row, u.Col) {
		if r.closed[v] {
			continue
		}
		if known, seen := r.gScore[v]; seen && tentative >= known {
			continue
		}
		r.gScore[v] = tentative
		r.cameFrom[v] = u
		r.push(v, tentative)
	}
}

// reconstructPath walks predecessor links back from current to the root
// and returns them in start-to-current order.
func reconstructPath(cameFrom map[grid.Cell]grid.Cell, current grid.Cell) []grid.Cell {
	path := []grid.Cell{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
