package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/mesh"
	"github.com/katalvlaran/meshpath/meshio"
)

var errNoEnds = errors.New("no endpoints given")

// endFlags binds --<prefix>-vertex, --<prefix>-face and --<prefix>-weights.
type endFlags struct {
	prefix  string
	vertex  int
	face    int
	weights []float64
}

func (e *endFlags) bind(fs *pflag.FlagSet, prefix, what string) {
	e.prefix = prefix
	fs.IntVar(&e.vertex, prefix+"-vertex", 0, what+" at a mesh vertex")
	fs.IntVar(&e.face, prefix+"-face", 0, what+" inside a face (centroid unless weights are given)")
	fs.Float64SliceVar(&e.weights, prefix+"-weights", nil, "barycentric weights for --"+prefix+"-face")
}

// given reports whether any of the end's flags were set.
func (e *endFlags) given(fs *pflag.FlagSet) bool {
	return fs.Changed(e.prefix+"-vertex") || fs.Changed(e.prefix+"-face") || fs.Changed(e.prefix+"-weights")
}

// end converts the flags to the same form query documents use.
func (e *endFlags) end(fs *pflag.FlagSet) meshio.End {
	var out meshio.End
	if fs.Changed(e.prefix + "-vertex") {
		v := e.vertex
		out.Vertex = &v
	}
	if fs.Changed(e.prefix + "-face") {
		f := e.face
		out.Face = &f
	}
	out.Weights = e.weights

	return out
}

// endsFlags is the --from/--to pair.
type endsFlags struct {
	from, to endFlags
}

func (p *endsFlags) bind(fs *pflag.FlagSet) {
	p.from.bind(fs, "from", "start")
	p.to.bind(fs, "to", "goal")
}

// ends returns errNoEnds when neither side was given; one side alone is an
// error.
func (p *endsFlags) ends(fs *pflag.FlagSet) (endpoint.Ends, error) {
	from, to := p.from.given(fs), p.to.given(fs)
	if !from && !to {
		return endpoint.Ends{}, errNoEnds
	}
	if !from || !to {
		return endpoint.Ends{}, errors.New("both --from-… and --to-… are required")
	}
	q := meshio.Query{Start: p.from.end(fs), Goal: p.to.end(fs)}

	return q.Ends()
}

func formatVertex(v mesh.Vertex) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func formatPolyline(vs []mesh.Vertex) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatVertex(v)
	}

	return strings.Join(parts, " ")
}
