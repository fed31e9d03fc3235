// Package adjacency derives the face dual graph of a triangulated mesh:
// two faces are neighbours exactly when they share an edge (an unordered
// pair of vertex indices).
//
// What:
//
//   - Graph lists, for every face, up to three Neighbor entries in the
//     face's own edge order (v0v1, v1v2, v2v0), so iteration is deterministic.
//   - Each Neighbor carries the shared Edge and the Cost of crossing it,
//     the distance between the two face centroids.
//   - Connected components are labelled once during Build, so reachability
//     checks are O(1).
//   - ToWeighted exports the dual graph to gonum's graph model.
//
// The graph is immutable after Build and safe for concurrent reads.
//
// Winding is not checked: a face wound clockwise next to one wound
// counter-clockwise still shares the edge, and later stages take their
// orientation from geometry.
//
// Complexity:
//
//   - Build: O(F) expected time (hash map over 3F edges), O(F) memory.
//   - Neighbors, SharedEdge, Connected: O(1).
//
// Errors:
//
//   - ErrNonManifold (wraps mesh.ErrMalformedMesh): an edge borders more than two faces.
//   - ErrDuplicateFace (wraps mesh.ErrMalformedMesh): two faces use the same three vertices.
//   - ErrNilMesh: Build called with a nil mesh.
package adjacency
