// Package astar implements A* shortest-path search on a grid.Grid with
// unit step costs and a Manhattan-distance heuristic.
//
// A* expands cells in order of f = g + h, where g is the exact number of
// steps from the start and h is the Manhattan distance to the target.
// Because moves are orthogonal and every step costs 1, h never
// overestimates and is consistent, so the first time the target is popped
// from the frontier its g is optimal.
//
// Complexity:
//
//   - Time:  O(N log N) where N ≤ rows×cols cells are discovered.
//   - Each cell is closed at most once.
//   - Each improvement pushes a new frontier entry (lazy decrease-key).
//   - Space: O(N) for g, predecessor and closed maps plus frontier entries.
//
// Determinism:
//
//	Neighbours are expanded in the grid's fixed east, south, west, north
//	order, and frontier entries with equal f are popped in push order.
//	Identical inputs therefore always yield identical paths.
//
// Outcomes:
//
//   - A found path is always complete and optimal.
//   - Out-of-bounds or obstacle endpoints, and unreachable targets,
//     produce "no path" (ok == false); these are not errors.
//
// Concurrency:
//
//	FindPath keeps all bookkeeping local to the call and never mutates the
//	grid, so one PathFinder may serve concurrent goroutines.
//
// Example usage:
//
//	g, _ := grid.Parse([]string{"...", ".#.", "..."})
//	pf, _ := astar.New(g)
//	path, ok := pf.FindPath(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
package astar
