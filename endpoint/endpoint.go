package endpoint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/meshpath/mesh"
)

type vertexSpec int

func (v vertexSpec) resolve(m *mesh.Mesh, _ float64) (Endpoint, error) { return FromVertex(m, int(v)) }
func (v vertexSpec) String() string                                    { return fmt.Sprintf("vertex %d", int(v)) }

type barySpec mesh.Barycenter

func (b barySpec) resolve(m *mesh.Mesh, tol float64) (Endpoint, error) {
	return FromBarycenter(m, mesh.Barycenter(b), tol)
}

func (b barySpec) String() string {
	return fmt.Sprintf("face %d %v", b.Face, b.Weights)
}

// AtVertex addresses mesh vertex v.
func AtVertex(v int) Spec { return vertexSpec(v) }

// AtBarycenter addresses a barycentric location.
func AtBarycenter(b mesh.Barycenter) Spec { return barySpec(b) }

// Vertices builds Ends from two vertex indices.
func Vertices(start, goal int) Ends {
	return Ends{Start: AtVertex(start), Goal: AtVertex(goal)}
}

// Barycentric builds Ends from two barycentric locations.
func Barycentric(start, goal mesh.Barycenter) Ends {
	return Ends{Start: AtBarycenter(start), Goal: AtBarycenter(goal)}
}

// Resolve places both ends on m. A tol ≤ 0 selects DefaultTolerance.
func (e Ends) Resolve(m *mesh.Mesh, tol float64) (Pair, error) {
	if e.Start == nil || e.Goal == nil {
		return Pair{}, fmt.Errorf("%w: start and goal are both required", ErrInvalidEndpoint)
	}
	start, err := e.Start.resolve(m, tol)
	if err != nil {
		return Pair{}, fmt.Errorf("start: %w", err)
	}
	goal, err := e.Goal.resolve(m, tol)
	if err != nil {
		return Pair{}, fmt.Errorf("goal: %w", err)
	}

	return Pair{Start: start, Goal: goal}, nil
}

// String renders the pair for logs.
func (e Ends) String() string {
	s, g := "<nil>", "<nil>"
	if e.Start != nil {
		s = e.Start.String()
	}
	if e.Goal != nil {
		g = e.Goal.String()
	}

	return s + " -> " + g
}

// FromBarycenter validates b against m and returns the resolved endpoint.
//
// Validation (in order):
//  1. b.Face in [0, NumFaces);
//  2. every weight finite and ≥ -tol;
//  3. |Σ weights - 1| ≤ tol.
//
// Weights within tolerance below zero are clamped, then all weights are
// rescaled to sum to exactly 1.
func FromBarycenter(m *mesh.Mesh, b mesh.Barycenter, tol float64) (Endpoint, error) {
	if tol <= 0 || math.IsNaN(tol) {
		tol = DefaultTolerance
	}
	if m == nil {
		return Endpoint{}, fmt.Errorf("%w: nil mesh", ErrInvalidEndpoint)
	}

	// 1) Face range.
	if b.Face < 0 || b.Face >= m.NumFaces() {
		return Endpoint{}, fmt.Errorf("%w: face %d out of range [0,%d)", ErrInvalidEndpoint, b.Face, m.NumFaces())
	}

	// 2) Individual weights.
	w := b.Weights
	for i, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Endpoint{}, fmt.Errorf("%w: weight %d is %v", ErrInvalidEndpoint, i, x)
		}
		if x < -tol {
			return Endpoint{}, fmt.Errorf("%w: weight %d = %v is negative", ErrInvalidEndpoint, i, x)
		}
	}

	// 3) Sum.
	if sum := floats.Sum(w[:]); !scalar.EqualWithinAbs(sum, 1, tol) {
		return Endpoint{}, fmt.Errorf("%w: weights %v sum to %v, want 1", ErrInvalidEndpoint, w, sum)
	}

	// 4) Clamp and renormalise.
	for i := range w {
		if w[i] < 0 {
			w[i] = 0
		}
	}
	floats.Scale(1/floats.Sum(w[:]), w[:])

	pos, err := m.Interpolate(b.Face, w)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return Endpoint{Face: b.Face, Weights: w, Position: pos}, nil
}

// FromVertex resolves vertex v to the lowest-indexed face using it,
// with weight 1 on v and 0 on the other two corners.
func FromVertex(m *mesh.Mesh, v int) (Endpoint, error) {
	if m == nil {
		return Endpoint{}, fmt.Errorf("%w: nil mesh", ErrInvalidEndpoint)
	}
	if v < 0 || v >= m.NumVertices() {
		return Endpoint{}, fmt.Errorf("%w: vertex %d out of range [0,%d)", ErrInvalidEndpoint, v, m.NumVertices())
	}
	f, ok := m.FirstIncidentFace(v)
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %d", ErrIsolatedVertex, v)
	}

	var w [3]float64
	w[m.Corner(f, v)] = 1
	pos, _ := m.Vertex(v)

	return Endpoint{Face: f, Weights: w, Position: pos}, nil
}
