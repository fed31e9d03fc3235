package meshio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/mesh"
)

// End is the YAML form of one path end.
type End struct {
	Vertex  *int      `yaml:"vertex,omitempty"`
	Face    *int      `yaml:"face,omitempty"`
	Weights []float64 `yaml:"weights,omitempty"`
}

// Spec converts the end to an endpoint specification.
func (e End) Spec() (endpoint.Spec, error) {
	switch {
	case e.Vertex != nil && e.Face != nil:
		return nil, fmt.Errorf("%w: end names both a vertex and a face", ErrFormat)
	case e.Vertex != nil:
		if len(e.Weights) > 0 {
			return nil, fmt.Errorf("%w: weights given for a vertex end", ErrFormat)
		}
		return endpoint.AtVertex(*e.Vertex), nil
	case e.Face != nil:
		b := mesh.Barycenter{Face: *e.Face, Weights: [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}}
		if len(e.Weights) > 0 {
			if len(e.Weights) != 3 {
				return nil, fmt.Errorf("%w: %d weights, want 3", ErrFormat, len(e.Weights))
			}
			copy(b.Weights[:], e.Weights)
		}
		return endpoint.AtBarycenter(b), nil
	}

	return nil, fmt.Errorf("%w: end needs a vertex or a face", ErrFormat)
}

// Query is one entry of a query document.
type Query struct {
	Mesh  string `yaml:"mesh"`
	Start End    `yaml:"start"`
	Goal  End    `yaml:"goal"`
}

// Ends converts the query to endpoint.Ends.
func (q Query) Ends() (endpoint.Ends, error) {
	s, err := q.Start.Spec()
	if err != nil {
		return endpoint.Ends{}, fmt.Errorf("start: %w", err)
	}
	g, err := q.Goal.Spec()
	if err != nil {
		return endpoint.Ends{}, fmt.Errorf("goal: %w", err)
	}

	return endpoint.Ends{Start: s, Goal: g}, nil
}

// QueryFile is a batch of queries over named meshes.
type QueryFile struct {
	Meshes  map[string]string `yaml:"meshes"`
	Queries []Query           `yaml:"queries"`
}

// DecodeQueries reads a query document. Every query must name a listed mesh.
func DecodeQueries(r io.Reader) (*QueryFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var qf QueryFile
	if err := dec.Decode(&qf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrFormat)
		}

		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	for i, q := range qf.Queries {
		if _, ok := qf.Meshes[q.Mesh]; !ok {
			return nil, fmt.Errorf("%w: query %d names unknown mesh %q", ErrFormat, i, q.Mesh)
		}
	}

	return &qf, nil
}

// LoadQueries reads a query document from path. Relative mesh paths are
// resolved against the document's directory.
func LoadQueries(path string) (*QueryFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	defer f.Close()

	qf, err := DecodeQueries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for name, p := range qf.Meshes {
		if !filepath.IsAbs(p) {
			qf.Meshes[name] = filepath.Join(dir, p)
		}
	}

	return qf, nil
}
