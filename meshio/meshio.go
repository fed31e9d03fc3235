// Package meshio reads and writes meshes and query batches as YAML.
//
// Mesh document:
//
//	vertices:
//	  - [0, 0, 0]
//	  - [1, 0, 0]
//	  - [1, 1, 0]
//	faces:
//	  - [0, 1, 2]
//
// Query document:
//
//	meshes:
//	  pond: pond.yaml        # relative to the query file
//	queries:
//	  - mesh: pond
//	    start: {vertex: 0}
//	    goal:  {face: 25, weights: [0, 0, 1]}
//
// An end is either {vertex: n} or {face: n, weights: [a, b, c]}; a face
// without weights means its centroid.
package meshio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshpath/mesh"
)

// ErrFormat is returned for documents that parse as YAML but do not
// describe a mesh or query batch.
var ErrFormat = errors.New("meshio: malformed document")

// Document is the YAML form of a mesh.
type Document struct {
	Vertices [][]float64 `yaml:"vertices"`
	Faces    [][]int     `yaml:"faces"`
}

// Mesh validates the document and builds the mesh it describes.
func (d Document) Mesh() (*mesh.Mesh, error) {
	vs := make([]mesh.Vertex, len(d.Vertices))
	for i, v := range d.Vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("%w: vertex %d has %d coordinates, want 3", ErrFormat, i, len(v))
		}
		vs[i] = mesh.Vertex{X: v[0], Y: v[1], Z: v[2]}
	}
	fs := make([]mesh.Face, len(d.Faces))
	for i, f := range d.Faces {
		if len(f) != 3 {
			return nil, fmt.Errorf("%w: face %d has %d indices, want 3", ErrFormat, i, len(f))
		}
		fs[i] = mesh.Face{f[0], f[1], f[2]}
	}

	return mesh.New(vs, fs)
}

// FromMesh returns the document form of m.
func FromMesh(m *mesh.Mesh) Document {
	var d Document
	for _, v := range m.Vertices() {
		d.Vertices = append(d.Vertices, []float64{v.X, v.Y, v.Z})
	}
	for _, f := range m.Faces() {
		d.Faces = append(d.Faces, []int{f[0], f[1], f[2]})
	}

	return d
}

// Decode reads one mesh document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrFormat)
		}

		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return d.Mesh()
}

// Encode writes m to w as a mesh document.
func Encode(w io.Writer, m *mesh.Mesh) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMesh(m)); err != nil {
		return fmt.Errorf("meshio: encode: %w", err)
	}

	return enc.Close()
}

// Load reads a mesh document from path.
func Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Save writes m to path, creating or truncating it.
func Save(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: %w", err)
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
