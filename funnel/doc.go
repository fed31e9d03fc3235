// Package funnel straightens a face corridor into the shortest polyline
// that stays inside it.
//
// The corridor is first unfolded: the first face is laid flat in its own
// plane and every following face is hinged about the edge it shares with
// its predecessor until it lies in the same plane, on the far side of that
// edge. On a planar mesh this is a rigid motion; on a curved one it is the
// development of the strip, so straight lines in the plane are geodesics
// inside the strip.
//
// The shared edges become portals, each with a left and a right end
// relative to the direction of travel. The funnel algorithm then sweeps
// the portals, keeping the tightest left and right boundaries seen from the
// current apex; when one boundary crosses the other the crossed end
// becomes a new apex and is emitted. Apexes are always corridor vertices,
// so they map back to exact 3D mesh positions.
//
// Output is start, the emitted apexes in order, goal. A one-face corridor
// yields exactly [start, goal].
//
// Complexity: O(n) amortised in the corridor length n (restarts rescan
// portals after the new apex only).
//
// Errors:
//
//   - ErrEmptyCorridor: no faces.
//   - ErrEndpointMismatch: start or goal not on the first or last face.
//   - ErrBrokenCorridor: consecutive faces do not share an edge.
package funnel
