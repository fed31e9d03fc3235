// Package astar implements best-first A* search over the face dual graph
// of a triangulated mesh.
//
// Model:
//
//   - Nodes are faces. The start pseudo-edge costs the distance from the
//     start point to the start face's centroid; each face-to-face step costs
//     the distance between the two centroids; the goal pseudo-edge costs the
//     distance from the goal face's centroid to the goal point.
//   - h(face) is the heuristic's estimate from the face centroid to the goal
//     point. With an admissible, consistent heuristic the first time the goal
//     face is popped its cost is optimal under this metric.
//   - The frontier is a binary heap ordered by f = g + h, ties broken by the
//     lower g, then by insertion order. Each face has at most one live heap
//     entry; improvements re-key it in place (decrease-key).
//   - A start face equal to the goal face short-circuits to a one-face result
//     with the straight-line cost, without expanding anything.
//
// Complexity:
//
//   - Time:  O(F log F) heap operations, at most three relaxations per expansion.
//   - Space: O(F) per search. Nothing is shared between searches besides the
//     read-only graph, so concurrent searches need no locking.
//
// Errors:
//
//   - ErrNoPathFound: frontier exhausted without reaching the goal face.
//   - ErrSearchAborted: expansion budget exceeded, context done, or the
//     heuristic failed / returned a negative or NaN estimate.
//   - ErrNilGraph, ErrNilHeuristic, ErrInvalidEndpoint, ErrOptionViolation: bad input.
package astar
