// Package tilemap reads and writes maps in the Tiled JSON tile-layer
// format used by the RTS level editor.
//
// Only the first layer is interpreted. Its "data" array is row-major
// (index = row*width + col) and uses these tile codes:
//
//	0  start cell   (walkable)
//	8  target cell  (walkable)
//	3  obstacle
//	*  anything else is walkable ground
//
// Export writes the original document back with every path cell other
// than start and target set to TilePath (5). Fields the package does not
// understand are preserved.
package tilemap
