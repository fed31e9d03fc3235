package funnel

import (
	"errors"

	"github.com/golang/geo/r2"
)

var (
	// ErrEmptyCorridor is returned for a corridor without faces.
	ErrEmptyCorridor = errors.New("funnel: empty corridor")

	// ErrBrokenCorridor is returned when consecutive corridor faces are not neighbours.
	ErrBrokenCorridor = errors.New("funnel: consecutive faces do not share an edge")

	// ErrEndpointMismatch is returned when an endpoint does not lie on its end face.
	ErrEndpointMismatch = errors.New("funnel: endpoint is not on the corridor's end face")
)

// eps is the distance under which two planar points are treated as one.
const eps = 1e-9

// flatFace is a corridor face laid in the unfolding plane.
type flatFace struct {
	ids [3]int      // mesh vertex indices, face order
	pts [3]r2.Point // unfolded positions, same order
}

// at returns the unfolded position of mesh vertex id, which must belong to the face.
func (f flatFace) at(id int) r2.Point {
	for k, v := range f.ids {
		if v == id {
			return f.pts[k]
		}
	}

	return r2.Point{}
}

// interpolate returns the planar point with barycentric weights w.
func (f flatFace) interpolate(w [3]float64) r2.Point {
	return f.pts[0].Mul(w[0]).Add(f.pts[1].Mul(w[1])).Add(f.pts[2].Mul(w[2]))
}

// portal is the crossing between two corridor faces, oriented for travel.
// left/right are mesh vertex indices, or -1 for the start/goal point.
type portal struct {
	l, r        r2.Point
	left, right int
}
