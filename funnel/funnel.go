package funnel

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/mesh"
)

// Refine returns the taut polyline from start to goal through the corridor faces.
//
// Preconditions (in order):
//  1. faces is non-empty (ErrEmptyCorridor);
//  2. start lies on faces[0] and goal on the last face (ErrEndpointMismatch);
//  3. consecutive faces share an edge (ErrBrokenCorridor).
func Refine(g *adjacency.Graph, faces []int, start, goal endpoint.Endpoint) ([]mesh.Vertex, error) {
	// 1) Validate.
	if len(faces) == 0 {
		return nil, ErrEmptyCorridor
	}
	if start.Face != faces[0] {
		return nil, fmt.Errorf("%w: start on face %d, corridor starts at %d", ErrEndpointMismatch, start.Face, faces[0])
	}
	if last := faces[len(faces)-1]; goal.Face != last {
		return nil, fmt.Errorf("%w: goal on face %d, corridor ends at %d", ErrEndpointMismatch, goal.Face, last)
	}

	// 2) Single face: the segment is already taut.
	if len(faces) == 1 {
		return []mesh.Vertex{start.Position, goal.Position}, nil
	}

	// 3) Unfold and build oriented portals.
	flat, edges, err := unfold(g, faces)
	if err != nil {
		return nil, err
	}
	s2 := flat[0].interpolate(start.Weights)
	g2 := flat[len(flat)-1].interpolate(goal.Weights)

	portals := make([]portal, 0, len(edges)+2)
	portals = append(portals, portal{l: s2, r: s2, left: -1, right: -1})
	for i, e := range edges {
		f := flat[i]
		a, b := f.at(e[0]), f.at(e[1])
		w := f.at(opposite(f.ids, e))
		if a.Sub(w).Cross(b.Sub(w)) > 0 {
			portals = append(portals, portal{l: b, r: a, left: e[1], right: e[0]})
		} else {
			portals = append(portals, portal{l: a, r: b, left: e[0], right: e[1]})
		}
	}
	portals = append(portals, portal{l: g2, r: g2, left: -1, right: -1})

	// 4) Pull the string.
	m := g.Mesh()
	out := []mesh.Vertex{start.Position}
	for _, id := range pull(portals) {
		out = appendDistinct(out, lift(m, id, start.Position))
	}
	out = appendDistinct(out, goal.Position)
	if len(out) == 1 {
		out = append(out, goal.Position) // start and goal coincide
	}

	return out, nil
}

// pull runs the funnel over portals and returns the mesh vertex of every
// committed apex, in order. portals[0] and the last portal are degenerate
// (start and goal).
func pull(portals []portal) []int {
	var apexes []int

	apex := portals[0].l
	pL, pR := portals[0].l, portals[0].r
	leftIndex, rightIndex := 0, 0

	// restart moves the apex to p, found at portal idx, and resumes after it.
	restart := func(p r2.Point, idx int) int {
		apex, pL, pR = p, p, p
		leftIndex, rightIndex = idx, idx

		return idx
	}

	for i := 1; i < len(portals); i++ {
		l, r := portals[i].l, portals[i].r

		// 1) Right boundary.
		if cross(apex, pR, r) >= 0 {
			if same(apex, pR) || cross(apex, pL, r) < 0 {
				pR, rightIndex = r, i
			} else {
				// Right crossed left: the left end is a corner.
				if id := portals[leftIndex].left; id >= 0 {
					apexes = append(apexes, id)
				}
				i = restart(pL, leftIndex)
				continue
			}
		}

		// 2) Left boundary.
		if cross(apex, pL, l) <= 0 {
			if same(apex, pL) || cross(apex, pR, l) > 0 {
				pL, leftIndex = l, i
			} else {
				if id := portals[rightIndex].right; id >= 0 {
					apexes = append(apexes, id)
				}
				i = restart(pR, rightIndex)
				continue
			}
		}
	}

	return apexes
}

// cross returns (b-a)×(c-a): positive when c is counter-clockwise of b seen from a.
func cross(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func same(a, b r2.Point) bool {
	return a.Sub(b).Norm() < eps
}

func appendDistinct(pts []mesh.Vertex, p mesh.Vertex) []mesh.Vertex {
	if n := len(pts); n > 0 && pts[n-1].Distance(p) < eps {
		return pts
	}

	return append(pts, p)
}

// Length returns the total length of a polyline.
func Length(points []mesh.Vertex) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}

	return total
}

// CentroidPolyline returns start, the centroid of every corridor face, goal.
// Its length equals the search cost of the corridor. A one-face corridor
// yields [start, goal].
func CentroidPolyline(g *adjacency.Graph, faces []int, start, goal endpoint.Endpoint) []mesh.Vertex {
	if len(faces) <= 1 {
		return []mesh.Vertex{start.Position, goal.Position}
	}
	out := make([]mesh.Vertex, 0, len(faces)+2)
	out = append(out, start.Position)
	for _, f := range faces {
		out = append(out, g.Centroid(f))
	}

	return append(out, goal.Position)
}
