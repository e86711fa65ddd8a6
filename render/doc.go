// Package render draws grids and solved routes for humans: as text for
// terminals and as PNG images for reports.
//
// Legend (text):
//
//	.  ground      #  obstacle
//	S  start       T  target
//	*  path cell
//
// Start and target take precedence over path marks. Renderers never
// search; they only display a path produced elsewhere.
package render
