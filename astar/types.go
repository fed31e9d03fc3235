package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for A* execution.
var (
	// ErrNoPathFound is returned when the goal face is unreachable from the start face.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrSearchAborted is returned when the search stops before completion.
	ErrSearchAborted = errors.New("astar: search aborted")

	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic is returned if no heuristic is supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrInvalidEndpoint is returned when an endpoint face is not in the graph.
	ErrInvalidEndpoint = errors.New("astar: endpoint face out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search after that many expansions.
	MaxExpansions int

	// OnExpand is called when a face is taken off the frontier for expansion,
	// with its cost from the start. Returning an error aborts the search.
	OnExpand func(face int, g float64) error

	err error
}

// DefaultOptions returns Options with a background context, no expansion
// limit and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(int, float64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded faces.
//
//	n > 0:  abort with ErrSearchAborted after n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(face int, g float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Faces lists the corridor from the start face to the goal face.
	Faces []int

	// Cost is start→centroid + Σ centroid→centroid + centroid→goal.
	Cost float64

	// Expanded counts faces taken off the frontier and expanded.
	Expanded int
}
