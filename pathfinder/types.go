package pathfinder

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/meshpath/astar"
	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/funnel"
	"github.com/katalvlaran/meshpath/mesh"
)

// Error kinds surfaced by queries, shared with the packages that raise them.
var (
	ErrMalformedMesh   = mesh.ErrMalformedMesh
	ErrInvalidEndpoint = endpoint.ErrInvalidEndpoint
	ErrIsolatedVertex  = endpoint.ErrIsolatedVertex
	ErrNoPathFound     = astar.ErrNoPathFound
	ErrSearchAborted   = astar.ErrSearchAborted

	// ErrOptionViolation is returned when an invalid QueryOption is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// Path is the answer to one query.
type Path struct {
	// Faces is the corridor from the start face to the goal face.
	Faces []int

	// Vertices is the refined polyline from start to goal, or nil when
	// vertex retrieval was not requested.
	Vertices []mesh.Vertex

	// Cost is the search cost: start → centroids of Faces → goal.
	Cost float64

	// Expanded counts faces the search expanded.
	Expanded int
}

// Length returns the length of the refined polyline, 0 without vertices.
func (p *Path) Length() float64 { return funnel.Length(p.Vertices) }

// QueryOption configures a single query or batch.
type QueryOption func(*queryOptions)

type queryOptions struct {
	retrieve      bool
	maxExpansions int
	tolerance     float64
	workers       int
	err           error
}

func defaultQueryOptions() queryOptions {
	return queryOptions{
		tolerance: endpoint.DefaultTolerance,
		workers:   runtime.GOMAXPROCS(0),
	}
}

// WithRetrieveVertices requests the refined polyline in Path.Vertices.
func WithRetrieveVertices() QueryOption {
	return func(o *queryOptions) { o.retrieve = true }
}

// WithVertices sets vertex retrieval explicitly.
func WithVertices(retrieve bool) QueryOption {
	return func(o *queryOptions) { o.retrieve = retrieve }
}

// WithMaxExpansions caps the number of faces a search may expand (0 = no cap).
func WithMaxExpansions(n int) QueryOption {
	return func(o *queryOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxExpansions = n
	}
}

// WithTolerance sets the barycentric weight tolerance (must be > 0).
func WithTolerance(tol float64) QueryOption {
	return func(o *queryOptions) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: tolerance must be positive (%v)", ErrOptionViolation, tol)
			return
		}
		o.tolerance = tol
	}
}

// WithWorkers bounds the parallelism of FindAll (must be ≥ 1).
func WithWorkers(n int) QueryOption {
	return func(o *queryOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

func applyQueryOptions(opts []QueryOption) (queryOptions, error) {
	q := defaultQueryOptions()
	for _, opt := range opts {
		opt(&q)
	}

	return q, q.err
}
