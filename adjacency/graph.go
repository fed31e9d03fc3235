package adjacency

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/meshpath/mesh"
)

// Build derives the dual graph of m.
//
// Steps:
//  1. reject duplicate faces (same vertex set, any order);
//  2. index every face edge; an edge seen on a third face fails with ErrNonManifold;
//  3. emit neighbours per face in the face's edge order;
//  4. label connected components.
func Build(m *mesh.Mesh) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	n := m.NumFaces()
	faces := m.Faces()

	// 1) Duplicate faces.
	seen := make(map[[3]int]int, n)
	for fi, f := range faces {
		key := [3]int{f[0], f[1], f[2]}
		sort.Ints(key[:])
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: faces %d and %d over vertices %v", ErrDuplicateFace, prev, fi, key)
		}
		seen[key] = fi
	}

	// 2) Edge index: each edge maps to at most two faces.
	type owners struct {
		faces [2]int
		count int
	}
	edges := make(map[Edge]*owners, 3*n/2+1)
	for fi, f := range faces {
		for k := 0; k < 3; k++ {
			e := NewEdge(f[k], f[(k+1)%3])
			o, ok := edges[e]
			if !ok {
				edges[e] = &owners{faces: [2]int{fi, -1}, count: 1}
				continue
			}
			if o.count == 2 {
				return nil, fmt.Errorf("%w: edge %v used by faces %d, %d and %d",
					ErrNonManifold, e, o.faces[0], o.faces[1], fi)
			}
			o.faces[1] = fi
			o.count = 2
		}
	}

	// 3) Neighbours with centroid costs.
	g := &Graph{
		m:         m,
		neighbors: make([][]Neighbor, n),
		centroids: make([]mesh.Vertex, n),
	}
	for fi := range faces {
		c, err := m.Centroid(fi)
		if err != nil {
			return nil, err
		}
		g.centroids[fi] = c
	}
	for fi, f := range faces {
		list := make([]Neighbor, 0, 3)
		for k := 0; k < 3; k++ {
			e := NewEdge(f[k], f[(k+1)%3])
			o := edges[e]
			if o.count < 2 {
				continue // boundary edge
			}
			other := o.faces[0]
			if other == fi {
				other = o.faces[1]
			}
			list = append(list, Neighbor{
				Face: other,
				Edge: e,
				Cost: g.centroids[fi].Distance(g.centroids[other]),
			})
		}
		g.neighbors[fi] = list
	}

	// 4) Components.
	g.label()

	return g, nil
}

// Mesh returns the mesh the graph was built from.
func (g *Graph) Mesh() *mesh.Mesh { return g.m }

// NumFaces returns the number of nodes in the dual graph.
func (g *Graph) NumFaces() int { return len(g.neighbors) }

// Neighbors returns the faces adjacent to face, in the face's edge order.
// The slice is shared and must not be modified. Out-of-range faces have no neighbours.
func (g *Graph) Neighbors(face int) []Neighbor {
	if face < 0 || face >= len(g.neighbors) {
		return nil
	}

	return g.neighbors[face]
}

// Degree returns the number of neighbours of face.
func (g *Graph) Degree(face int) int { return len(g.Neighbors(face)) }

// Centroid returns the precomputed centroid of face.
// The caller guarantees 0 ≤ face < NumFaces.
func (g *Graph) Centroid(face int) mesh.Vertex { return g.centroids[face] }

// SharedEdge returns the edge between faces a and b, if they are neighbours.
func (g *Graph) SharedEdge(a, b int) (Edge, bool) {
	for _, nb := range g.Neighbors(a) {
		if nb.Face == b {
			return nb.Edge, true
		}
	}

	return Edge{}, false
}

// EdgeCost returns the crossing cost between neighbouring faces a and b.
func (g *Graph) EdgeCost(a, b int) (float64, bool) {
	for _, nb := range g.Neighbors(a) {
		if nb.Face == b {
			return nb.Cost, true
		}
	}

	return 0, false
}

// NumEdges returns the number of interior (shared) edges.
func (g *Graph) NumEdges() int {
	total := 0
	for _, list := range g.neighbors {
		total += len(list)
	}

	return total / 2
}
