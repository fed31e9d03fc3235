// Package render draws a mesh and an optional path with gonum/plot.
//
// The mesh is read through MeshView, a read-only accessor that *mesh.Mesh
// satisfies, and projected onto one coordinate plane. Edges are drawn as
// thin black lines, vertices as small blue dots and the path as a thick red
// polyline.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/meshpath/mesh"
)

// ErrEmptyMesh is returned when there is nothing to draw.
var ErrEmptyMesh = errors.New("render: mesh has no faces")

// MeshView is the read-only view of a mesh the renderer needs.
type MeshView interface {
	Vertices() []mesh.Vertex
	Faces() []mesh.Face
}

// Projection selects the coordinate plane a 3D point is drawn on.
type Projection int

const (
	XY Projection = iota
	XZ
	YZ
)

// ParseProjection maps "xy", "xz" or "yz" to a Projection.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "", "xy":
		return XY, nil
	case "xz":
		return XZ, nil
	case "yz":
		return YZ, nil
	}

	return XY, fmt.Errorf("render: unknown projection %q", s)
}

func (p Projection) apply(v mesh.Vertex) (float64, float64) {
	switch p {
	case XZ:
		return v.X, v.Z
	case YZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// Options controls the drawing.
type Options struct {
	Title      string
	Projection Projection
	PathWidth  vg.Length
}

// Option configures Options.
type Option func(*Options)

// WithTitle sets the plot title.
func WithTitle(s string) Option { return func(o *Options) { o.Title = s } }

// WithProjection selects the drawing plane.
func WithProjection(p Projection) Option { return func(o *Options) { o.Projection = p } }

// points adapts a projected polyline to plotter.XYer.
type points struct {
	vs   []mesh.Vertex
	proj Projection
}

func (p points) Len() int                    { return len(p.vs) }
func (p points) XY(i int) (float64, float64) { return p.proj.apply(p.vs[i]) }

var (
	edgeColor   = color.RGBA{A: 255}
	vertexColor = color.RGBA{B: 255, A: 255}
	pathColor   = color.RGBA{R: 255, A: 255}
)

// Plot draws m and, when path has at least two points, the path over it.
func Plot(m MeshView, path []mesh.Vertex, opts ...Option) (*plot.Plot, error) {
	o := Options{Projection: XY, PathWidth: vg.Points(3)}
	for _, opt := range opts {
		opt(&o)
	}
	faces := m.Faces()
	if len(faces) == 0 {
		return nil, ErrEmptyMesh
	}
	vs := m.Vertices()

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text, p.Y.Label.Text = axisLabels(o.Projection)

	// 1) Edges, each drawn once.
	drawn := make(map[[2]int]bool, 3*len(faces)/2)
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if drawn[[2]int{a, b}] {
				continue
			}
			drawn[[2]int{a, b}] = true
			l, err := plotter.NewLine(points{vs: []mesh.Vertex{vs[a], vs[b]}, proj: o.Projection})
			if err != nil {
				return nil, fmt.Errorf("render: edge %d-%d: %w", a, b, err)
			}
			l.LineStyle.Color = edgeColor
			l.LineStyle.Width = vg.Points(0.5)
			p.Add(l)
		}
	}

	// 2) Vertices.
	sc, err := plotter.NewScatter(points{vs: vs, proj: o.Projection})
	if err != nil {
		return nil, fmt.Errorf("render: vertices: %w", err)
	}
	sc.GlyphStyle.Color = vertexColor
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)

	// 3) Path.
	if len(path) >= 2 {
		l, err := plotter.NewLine(points{vs: path, proj: o.Projection})
		if err != nil {
			return nil, fmt.Errorf("render: path: %w", err)
		}
		l.LineStyle.Color = pathColor
		l.LineStyle.Width = o.PathWidth
		p.Add(l)
		p.Legend.Add("path", l)
	}

	return p, nil
}

func axisLabels(p Projection) (string, string) {
	switch p {
	case XZ:
		return "x", "z"
	case YZ:
		return "y", "z"
	default:
		return "x", "y"
	}
}

// WriteTo renders p in the given format ("png", "svg", "pdf", ...) at
// width × height inches into w.
func WriteTo(w io.Writer, p *plot.Plot, width, height float64, format string) error {
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}

	return nil
}

// Save renders p to file; the extension picks the format.
func Save(file string, p *plot.Plot, width, height float64) error {
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, file); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
