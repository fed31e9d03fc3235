package mesh

import (
	"errors"

	"github.com/golang/geo/r3"
)

// Sentinel errors for mesh construction and access.
var (
	// ErrMalformedMesh is returned when the vertex or face data violates a mesh invariant.
	ErrMalformedMesh = errors.New("mesh: malformed mesh")

	// ErrFaceIndex is returned when a face index is outside [0, NumFaces).
	ErrFaceIndex = errors.New("mesh: face index out of range")

	// ErrVertexIndex is returned when a vertex index is outside [0, NumVertices).
	ErrVertexIndex = errors.New("mesh: vertex index out of range")
)

// Vertex is a point in 3-space.
type Vertex = r3.Vector

// Face is a triangle given by three vertex indices.
type Face [3]int

// Barycenter locates a point on a face as a weighted sum of the face's vertices.
// Weights[i] belongs to the i-th vertex of the face.
type Barycenter struct {
	Face    int
	Weights [3]float64
}

// Mesh is an immutable triangulated surface.
type Mesh struct {
	vertices []Vertex
	faces    []Face

	// firstFace[v] is the lowest-indexed face using vertex v, or -1.
	firstFace []int
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vertex
}
