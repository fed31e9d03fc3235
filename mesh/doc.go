// Package mesh holds the immutable geometry of a triangulated surface:
// vertex positions, triangular faces and barycentric locations on them.
//
// What:
//
//   - Mesh owns a deep copy of its vertices and faces; nothing mutates it
//     after New returns, so a single *Mesh may be shared by any number of
//     concurrent queries without locking.
//   - Faces are index triples into the vertex list. Every index must be in
//     range and the three indices must be pairwise distinct.
//   - Barycenter addresses a point inside (or on the boundary of) a face by
//     three weights, one per face vertex.
//
// Precomputation:
//
//   - For every vertex, the first incident face in face-index order is
//     recorded during New, so vertex-to-face lookups are O(1).
//
// Complexity:
//
//   - New: O(V + F) time and memory.
//   - Centroid, Interpolate, FirstIncidentFace: O(1).
//
// Errors:
//
//   - ErrMalformedMesh: out-of-range or repeated face index, non-finite coordinate.
//   - ErrFaceIndex, ErrVertexIndex: accessor called with an index out of range.
package mesh
