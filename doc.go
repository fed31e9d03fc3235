// Package meshpath finds shortest paths across the faces of a triangle mesh.
//
// 🚀 What is meshpath?
//
//	A small library (plus a command) that answers "how do I walk from here
//	to there over this surface?":
//		• Meshes: vertices, triangular faces, barycentric points
//		• Dual graph: face adjacency across shared edges, components
//		• Search: A* over faces with pluggable heuristics
//		• Refinement: funnel pull of the face corridor into a taut polyline
//		• Batches: parallel queries and a cache of built meshes
//		• I/O: YAML meshes and query documents, gonum/plot rendering
//
// Everything is organised in subpackages:
//
//	mesh/       Mesh, Face, Barycenter and validation
//	adjacency/  the face dual graph (Build, Neighbors, Components)
//	heuristics/ Euclidean, Zero, Scaled, ByName
//	endpoint/   vertex and barycentric endpoints, resolution and checks
//	astar/      A* over the dual graph
//	funnel/     corridor unfolding and the funnel pull
//	pathfinder/ Finder, FindBestPath, FindAll and Registry
//	meshio/     YAML mesh and query documents
//	render/     plots of meshes and paths
//
// Quick ASCII example (the unit square, split along 0-2):
//
//	3───2
//	│ ╱ │      vertex 1 → vertex 3: faces [0 1], polyline 1 → 3
//	0───1
//
// The meshpath command wraps the same pipeline:
//
//	go install github.com/katalvlaran/meshpath/cmd/meshpath@latest
//	meshpath find square.yaml --from-vertex 1 --to-vertex 3 --vertices
package meshpath
