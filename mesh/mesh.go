package mesh

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// New validates and deep-copies vertices and faces into an immutable Mesh.
//
// Validation (in order):
//  1. every vertex coordinate is finite;
//  2. every face index lies in [0, len(vertices));
//  3. the three indices of a face are pairwise distinct.
//
// Any violation returns ErrMalformedMesh wrapped with the offending element.
// An empty mesh (no faces) is valid; every query on it fails at endpoint resolution.
//
// Complexity: O(V + F) time and memory.
func New(vertices []Vertex, faces []Face) (*Mesh, error) {
	// 1) Validate coordinates.
	for i, v := range vertices {
		if !finite(v) {
			return nil, fmt.Errorf("%w: vertex %d has non-finite coordinate %v", ErrMalformedMesh, i, v)
		}
	}

	// 2) Validate faces and record first incident face per vertex.
	first := make([]int, len(vertices))
	for i := range first {
		first[i] = -1
	}
	for fi, f := range faces {
		for k, v := range f {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d index %d = %d out of range [0,%d)",
					ErrMalformedMesh, fi, k, v, len(vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, fmt.Errorf("%w: face %d repeats a vertex %v", ErrMalformedMesh, fi, f)
		}
		for _, v := range f {
			if first[v] < 0 {
				first[v] = fi
			}
		}
	}

	// 3) Deep copy to prevent external mutation.
	vs := make([]Vertex, len(vertices))
	copy(vs, vertices)
	fs := make([]Face, len(faces))
	copy(fs, faces)

	return &Mesh{vertices: vs, faces: fs, firstFace: first}, nil
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Vertices returns a copy of the vertex list.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, len(m.vertices))
	copy(out, m.vertices)

	return out
}

// Faces returns a copy of the face list.
func (m *Mesh) Faces() []Face {
	out := make([]Face, len(m.faces))
	copy(out, m.faces)

	return out
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) (Vertex, error) {
	if i < 0 || i >= len(m.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexIndex, i)
	}

	return m.vertices[i], nil
}

// Face returns the vertex indices of face f.
func (m *Mesh) Face(f int) (Face, error) {
	if f < 0 || f >= len(m.faces) {
		return Face{}, fmt.Errorf("%w: %d", ErrFaceIndex, f)
	}

	return m.faces[f], nil
}

// Triangle returns the three vertex positions of face f, in face order.
func (m *Mesh) Triangle(f int) ([3]Vertex, error) {
	if f < 0 || f >= len(m.faces) {
		return [3]Vertex{}, fmt.Errorf("%w: %d", ErrFaceIndex, f)
	}
	fc := m.faces[f]

	return [3]Vertex{m.vertices[fc[0]], m.vertices[fc[1]], m.vertices[fc[2]]}, nil
}

// Centroid returns the arithmetic mean of the vertices of face f.
func (m *Mesh) Centroid(f int) (Vertex, error) {
	return m.Interpolate(f, [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
}

// Interpolate returns Σ w[i]·vertex(face[i]). Weights are used as given;
// validation belongs to the caller (see package endpoint).
func (m *Mesh) Interpolate(f int, w [3]float64) (Vertex, error) {
	tri, err := m.Triangle(f)
	if err != nil {
		return Vertex{}, err
	}

	return tri[0].Mul(w[0]).Add(tri[1].Mul(w[1])).Add(tri[2].Mul(w[2])), nil
}

// FirstIncidentFace returns the lowest-indexed face that uses vertex v.
// ok is false when v is out of range or no face references it.
func (m *Mesh) FirstIncidentFace(v int) (face int, ok bool) {
	if v < 0 || v >= len(m.firstFace) {
		return -1, false
	}
	face = m.firstFace[v]

	return face, face >= 0
}

// Corner returns the position of v inside face f: 0, 1 or 2, or -1 if f does not use v.
func (m *Mesh) Corner(f, v int) int {
	if f < 0 || f >= len(m.faces) {
		return -1
	}
	for k, u := range m.faces[f] {
		if u == v {
			return k
		}
	}

	return -1
}

// Bounds returns the axis-aligned bounding box of all vertices.
// The zero Bounds is returned for a mesh without vertices.
func (m *Mesh) Bounds() Bounds {
	if len(m.vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.vertices[0], Max: m.vertices[0]}
	for _, v := range m.vertices[1:] {
		b.Min = r3.Vector{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)}
		b.Max = r3.Vector{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)}
	}

	return b
}

func finite(v Vertex) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}
