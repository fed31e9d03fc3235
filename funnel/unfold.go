package funnel

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/mesh"
)

// unfold lays every face of the corridor into the plane of faces[0].
// It also returns the shared edge between each consecutive pair.
func unfold(g *adjacency.Graph, faces []int) ([]flatFace, []adjacency.Edge, error) {
	m := g.Mesh()
	flat := make([]flatFace, len(faces))
	edges := make([]adjacency.Edge, 0, len(faces)-1)

	// 1) Root face: orthonormal frame at its first vertex.
	root, err := m.Face(faces[0])
	if err != nil {
		return nil, nil, err
	}
	tri, _ := m.Triangle(faces[0])
	ex := tri[1].Sub(tri[0]).Normalize()
	ey := tri[2].Sub(tri[0])
	ey = ey.Sub(ex.Mul(ey.Dot(ex)))
	if ey.Norm() < eps {
		ey = ex.Ortho()
	}
	ey = ey.Normalize()
	flat[0].ids = [3]int(root)
	for k, p := range tri {
		d := p.Sub(tri[0])
		flat[0].pts[k] = r2.Point{X: d.Dot(ex), Y: d.Dot(ey)}
	}

	// 2) Hinge each following face about its shared edge.
	for i := 1; i < len(faces); i++ {
		e, ok := g.SharedEdge(faces[i-1], faces[i])
		if !ok {
			return nil, nil, fmt.Errorf("%w: faces %d and %d (positions %d, %d)",
				ErrBrokenCorridor, faces[i-1], faces[i], i-1, i)
		}
		edges = append(edges, e)

		f, err := m.Face(faces[i])
		if err != nil {
			return nil, nil, err
		}
		prev := flat[i-1]
		flat[i].ids = [3]int(f)
		for k, id := range f {
			if id == e[0] || id == e[1] {
				flat[i].pts[k] = prev.at(id)
				continue
			}
			flat[i].pts[k] = hinge(m, e, id, prev)
		}
	}

	return flat, edges, nil
}

// hinge places vertex c of the next face in the plane: same distance from
// the shared edge (a, b) as in 3D, same foot point along it, on the side
// opposite the previous face's third vertex.
func hinge(m *mesh.Mesh, e adjacency.Edge, c int, prev flatFace) r2.Point {
	A, _ := m.Vertex(e[0])
	B, _ := m.Vertex(e[1])
	C, _ := m.Vertex(c)

	ab := B.Sub(A)
	t := C.Sub(A).Dot(ab) / ab.Norm2()
	foot := A.Add(ab.Mul(t))
	h := C.Sub(foot).Norm()

	a2, b2 := prev.at(e[0]), prev.at(e[1])
	d := b2.Sub(a2)
	n := d.Ortho().Normalize()
	if n.Dot(prev.at(opposite(prev.ids, e)).Sub(a2)) > 0 {
		n = n.Mul(-1)
	}

	return a2.Add(d.Mul(t)).Add(n.Mul(h))
}

// opposite returns the vertex of ids not on edge e.
func opposite(ids [3]int, e adjacency.Edge) int {
	for _, v := range ids {
		if v != e[0] && v != e[1] {
			return v
		}
	}

	return ids[0]
}

// lift returns the 3D position of portal end id, falling back to the
// given point for the start and goal pseudo-vertices.
func lift(m *mesh.Mesh, id int, fallback r3.Vector) r3.Vector {
	if id < 0 {
		return fallback
	}
	v, _ := m.Vertex(id)

	return v
}
