// Package grid treats a rectangular 2D map of passable and obstacle cells
// as an implicit 4-connected graph.
//
// What:
//
//   - Grid wraps a rectangular [][]bool passability matrix (true = passable).
//   - IsValidPosition is the bounds-checked passability oracle.
//   - Neighbors enumerates orthogonal neighbours in a fixed order:
//     east, south, west, north.
//   - Regions groups passable cells into connected components.
//   - Distances / Distance compute exact step counts by breadth-first search.
//
// Why:
//
//   - RTS maps: units walk on ground tiles and never through walls.
//   - Search engines (see package astar) need a cheap, read-only oracle.
//   - Distance is an independent optimality check for heuristic searches.
//
// Immutability:
//
//	New deep-copies its input. No method mutates a Grid, so a single Grid
//	may be shared by any number of concurrent readers.
//
// Complexity:
//
//   - IsValidPosition, Neighbors: O(1).
//   - Regions:                    O(R×C), Memory: O(R×C).
//   - Distances:                  O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol:      Parse met a character other than '.', '#', 'S', 'T' or '*'.
package grid
