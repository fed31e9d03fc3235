package endpoint

import (
	"errors"

	"github.com/katalvlaran/meshpath/mesh"
)

var (
	// ErrInvalidEndpoint is returned when an endpoint cannot be placed on the mesh.
	ErrInvalidEndpoint = errors.New("endpoint: invalid endpoint")

	// ErrIsolatedVertex is returned when a vertex endpoint is not used by any face.
	ErrIsolatedVertex = errors.New("endpoint: vertex belongs to no face")
)

// DefaultTolerance bounds how far barycentric weights may stray from the
// simplex before they are rejected.
const DefaultTolerance = 1e-6

// Endpoint is a resolved surface point.
type Endpoint struct {
	Face     int
	Weights  [3]float64
	Position mesh.Vertex
}

// Barycenter returns the face/weights form of e.
func (e Endpoint) Barycenter() mesh.Barycenter {
	return mesh.Barycenter{Face: e.Face, Weights: e.Weights}
}

// Spec is an unresolved endpoint. It is implemented only by the values
// returned from AtVertex and AtBarycenter.
type Spec interface {
	resolve(m *mesh.Mesh, tol float64) (Endpoint, error)
	String() string
}

// Ends is an unresolved start/goal pair.
type Ends struct {
	Start, Goal Spec
}

// Pair is a resolved start/goal pair.
type Pair struct {
	Start, Goal Endpoint
}
