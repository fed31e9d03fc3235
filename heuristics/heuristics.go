// Package heuristics supplies distance estimators for the face search.
//
// A Heuristic estimates the remaining cost between two points. The search
// only stays optimal when the estimate never exceeds the true remaining path
// cost (admissible) and satisfies the triangle inequality (consistent);
// straight-line distance has both properties on any surface embedded in
// 3-space. Admissibility is not verified at run time.
package heuristics

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/meshpath/mesh"
)

// ErrInvalidFactor is returned by Scaled for a negative or non-finite factor.
var ErrInvalidFactor = errors.New("heuristics: scale factor must be finite and non-negative")

// Heuristic estimates the distance between two points.
type Heuristic interface {
	Distance(a, b mesh.Vertex) (float64, error)
}

// Func adapts an ordinary function to the Heuristic interface.
type Func func(a, b mesh.Vertex) (float64, error)

// Distance calls f(a, b).
func (f Func) Distance(a, b mesh.Vertex) (float64, error) { return f(a, b) }

// Euclidean returns the straight-line distance estimator.
func Euclidean() Heuristic {
	return Func(func(a, b mesh.Vertex) (float64, error) {
		return a.Distance(b), nil
	})
}

// Zero returns an estimator that always answers 0, which turns the search
// into a uniform-cost (Dijkstra) search.
func Zero() Heuristic {
	return Func(func(mesh.Vertex, mesh.Vertex) (float64, error) { return 0, nil })
}

// Scaled multiplies the estimate of h by factor.
// Factors above 1 trade optimality for fewer expansions; factors in [0,1]
// keep an admissible h admissible.
func Scaled(h Heuristic, factor float64) (Heuristic, error) {
	if h == nil {
		return nil, errors.New("heuristics: nil base heuristic")
	}
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	return Func(func(a, b mesh.Vertex) (float64, error) {
		d, err := h.Distance(a, b)
		if err != nil {
			return 0, err
		}

		return d * factor, nil
	}), nil
}

// ErrUnknownHeuristic is returned by ByName for an unrecognised name.
var ErrUnknownHeuristic = errors.New("heuristics: unknown heuristic")

// ByName resolves a configured heuristic: "euclidean" (or ""), "zero" or
// "dijkstra". A scale other than 1 wraps the result with Scaled.
func ByName(name string, scale float64) (Heuristic, error) {
	var h Heuristic
	switch name {
	case "", "euclidean":
		h = Euclidean()
	case "zero", "dijkstra":
		h = Zero()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	if scale == 1 {
		return h, nil
	}

	return Scaled(h, scale)
}
