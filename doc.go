// Package gridpath is the root of a shortest-route toolkit for battle units
// on 2-D tile maps with impassable obstacles.
//
// 🚀 What is gridpath?
//
//	A small, deterministic A* engine plus everything needed to feed and show it:
//		• grid     – immutable passability map, 4-neighbourhood, BFS regions
//		• astar    – A* with a Manhattan heuristic and FIFO tie-breaking
//		• tilemap  – Tiled JSON maps (0 start, 8 target, 3 obstacle, 5 path)
//		• mapgen   – striped test maps, random endpoints, the demo battlefield
//		• render   – ASCII (optionally coloured) and PNG output
//		• batch    – many queries on one grid, run concurrently
//		• server   – HTTP API with Prometheus metrics
//		• config   – YAML settings shared by the CLI
//
// The engine itself lives in grid and astar and depends on nothing but the
// standard library. Everything else consumes its results.
//
// Quick ASCII example (S start, T target, * route, # wall):
//
//	S**.
//	.#*#
//	.#*T
//
// The command line front end is cmd/gridpath:
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
