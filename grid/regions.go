package grid

// Regions finds all contiguous regions of passable cells under
// 4-connectivity. Regions are emitted in row-major order of their first
// cell; cells inside a region are in breadth-first discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.passable))
	var regions [][]Cell

	for i0, ok := range g.passable {
		if !ok || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, v := range g.Neighbors(u.Row, u.Col) {
				vi := g.index(v.Row, v.Col)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
