package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meshpath/mesh"
)

var (
	// ErrNilMesh is returned when Build receives a nil mesh.
	ErrNilMesh = errors.New("adjacency: mesh is nil")

	// ErrNonManifold indicates an edge shared by more than two faces.
	ErrNonManifold = fmt.Errorf("%w: edge shared by more than two faces", mesh.ErrMalformedMesh)

	// ErrDuplicateFace indicates two faces over the same vertex triple.
	ErrDuplicateFace = fmt.Errorf("%w: duplicate face", mesh.ErrMalformedMesh)
)

// Edge is an unordered vertex pair stored with the smaller index first.
type Edge [2]int

// NewEdge returns the canonical Edge for vertices a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{a, b}
}

// Neighbor is one face across a shared edge.
type Neighbor struct {
	Face int
	Edge Edge
	Cost float64 // centroid-to-centroid distance
}

// Graph is the face dual graph of a mesh.
type Graph struct {
	m          *mesh.Mesh
	neighbors  [][]Neighbor
	centroids  []mesh.Vertex
	component  []int   // component label per face
	components [][]int // faces per label, in flood-fill order
}
