package grid

// Unreachable marks cells that Distances could not reach.
const Unreachable = -1

// Distances runs a breadth-first search from `from` over passable cells
// and returns the step count to every cell, indexed row-major
// (row*Cols()+col). Cells that are obstacles or cannot be reached hold
// Unreachable. If `from` is not a valid position every entry is Unreachable.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Distances(from Cell) []int {
	dist := make([]int, len(g.passable))
	for i := range dist {
		dist[i] = Unreachable
	}
	if !g.IsValidPosition(from.Row, from.Col) {
		return dist
	}

	i0 := g.index(from.Row, from.Col)
	dist[i0] = 0
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		uc := g.Coordinate(u)
		for _, v := range g.Neighbors(uc.Row, uc.Col) {
			vi := g.index(v.Row, v.Col)
			if dist[vi] == Unreachable {
				dist[vi] = dist[u] + 1
				queue = append(queue, vi)
			}
		}
	}
	return dist
}

// Distance returns the shortest step count between two cells and whether
// `to` is reachable from `from` at all.
func (g *Grid) Distance(from, to Cell) (int, bool) {
	if !g.IsValidPosition(to.Row, to.Col) {
		return 0, false
	}
	d := g.Distances(from)[g.index(to.Row, to.Col)]
	if d == Unreachable {
		return 0, false
	}
	return d, true
}
