// Package endpoint turns user-supplied path ends into concrete surface
// points: a face, barycentric weights on it, and the 3D position they
// interpolate.
//
// Two shorthands are accepted:
//
//   - AtBarycenter: an explicit face plus three weights. Weights must be
//     finite, each ≥ -tol, and sum to 1 within tol. Small negative weights
//     are clamped to zero and the result renormalised.
//   - AtVertex: a mesh vertex, resolved to the lowest-indexed face that
//     uses it, with weight 1 on that vertex.
//
// Ends pairs a start and a goal; Barycentric and Vertices build the two
// uniform forms, and a literal Ends may mix them.
//
// Errors:
//
//   - ErrInvalidEndpoint: face or vertex out of range, bad weights, missing end.
//   - ErrIsolatedVertex: vertex shorthand for a vertex no face uses.
package endpoint
