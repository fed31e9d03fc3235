// Package pathfinder answers shortest-path queries on a triangulated mesh.
//
// A query names two ends (vertices or barycentric points), runs A* over the
// face dual graph and, on request, pulls the resulting face corridor tight
// into a polyline through the surface.
//
// Entry points:
//
//   - FindBestPath: one-shot query; builds the dual graph for the call.
//   - Finder: owns a mesh and its dual graph, built once. Find answers one
//     query, FindAll answers a batch in parallel. A Finder is safe for
//     concurrent use; every query owns its search state.
//   - Registry: a bounded, named cache of Finders that builds each mesh's
//     graph at most once even under concurrent demand.
//
// Guarantee: whenever vertices are retrieved, the polyline is never longer
// than the search cost. If refinement ever produces a longer line the
// corridor's centroid polyline (whose length is exactly the cost) is
// returned instead and a warning is logged.
//
// Errors (all testable with errors.Is):
//
//   - ErrMalformedMesh: mesh rejected while building the dual graph.
//   - ErrInvalidEndpoint, ErrIsolatedVertex: ends cannot be placed.
//   - ErrNoPathFound: the two faces are not connected.
//   - ErrSearchAborted: expansion budget exhausted, context done, or heuristic failure.
//   - ErrOptionViolation: invalid query option.
package pathfinder
