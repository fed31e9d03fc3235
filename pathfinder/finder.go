package pathfinder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/astar"
	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/funnel"
	"github.com/katalvlaran/meshpath/heuristics"
	"github.com/katalvlaran/meshpath/mesh"
)

// lengthSlack absorbs rounding when comparing refined length with cost.
const lengthSlack = 1e-9

// Finder answers queries against one mesh. Create it with New.
type Finder struct {
	m   *mesh.Mesh
	g   *adjacency.Graph
	log *zap.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger routes Finder diagnostics to l. The default discards them.
func WithLogger(l *zap.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// New builds the dual graph of m and returns a Finder for it.
// A malformed mesh fails with an error wrapping ErrMalformedMesh.
func New(m *mesh.Mesh, opts ...Option) (*Finder, error) {
	f := &Finder{m: m, log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrMalformedMesh)
	}

	began := time.Now()
	g, err := adjacency.Build(m)
	if err != nil {
		return nil, err
	}
	f.g = g
	f.log.Debug("dual graph built",
		zap.Int("vertices", m.NumVertices()),
		zap.Int("faces", g.NumFaces()),
		zap.Int("edges", g.NumEdges()),
		zap.Int("components", len(g.Components())),
		zap.Duration("took", time.Since(began)),
	)

	return f, nil
}

// Mesh returns the Finder's mesh.
func (f *Finder) Mesh() *mesh.Mesh { return f.m }

// Graph returns the Finder's dual graph.
func (f *Finder) Graph() *adjacency.Graph { return f.g }

// Find answers one query. No partial Path is returned alongside an error.
//
// Steps:
//  1. resolve the ends on the mesh;
//  2. search the dual graph;
//  3. if requested, refine the corridor and enforce length ≤ cost.
func (f *Finder) Find(ctx context.Context, h heuristics.Heuristic, ends endpoint.Ends, opts ...QueryOption) (*Path, error) {
	q, err := applyQueryOptions(opts)
	if err != nil {
		return nil, err
	}

	return f.find(ctx, h, ends, q)
}

func (f *Finder) find(ctx context.Context, h heuristics.Heuristic, ends endpoint.Ends, q queryOptions) (*Path, error) {
	// 1) Resolve.
	pair, err := ends.Resolve(f.m, q.tolerance)
	if err != nil {
		return nil, err
	}

	// 2) Search.
	res, err := astar.Search(f.g, h, pair.Start, pair.Goal,
		astar.WithContext(ctx),
		astar.WithMaxExpansions(q.maxExpansions),
	)
	if err != nil {
		f.log.Debug("search failed", zap.Stringer("ends", ends), zap.Error(err))
		return nil, err
	}
	p := &Path{Faces: res.Faces, Cost: res.Cost, Expanded: res.Expanded}

	// 3) Refine.
	if q.retrieve {
		pts, err := funnel.Refine(f.g, res.Faces, pair.Start, pair.Goal)
		if err != nil {
			return nil, fmt.Errorf("pathfinder: refine corridor: %w", err)
		}
		var fellBack bool
		p.Vertices, fellBack = settle(p.Cost, pts, func() []mesh.Vertex {
			return funnel.CentroidPolyline(f.g, res.Faces, pair.Start, pair.Goal)
		})
		if fellBack {
			f.log.Warn("refined path longer than search cost; using centroid polyline",
				zap.Stringer("ends", ends),
				zap.Float64("cost", p.Cost),
				zap.Float64("refined", funnel.Length(pts)),
			)
		}
	}

	f.log.Debug("path found",
		zap.Stringer("ends", ends),
		zap.Int("faces", len(p.Faces)),
		zap.Float64("cost", p.Cost),
		zap.Int("expanded", p.Expanded),
	)

	return p, nil
}

// settle keeps refined unless it is longer than cost, in which case the
// fallback polyline is returned and fellBack is true.
func settle(cost float64, refined []mesh.Vertex, fallback func() []mesh.Vertex) ([]mesh.Vertex, bool) {
	if funnel.Length(refined) <= cost*(1+lengthSlack)+lengthSlack {
		return refined, false
	}

	return fallback(), true
}

// FindBestPath answers a single query on m, building the dual graph for the call.
// Reuse a Finder to amortise graph construction over many queries.
func FindBestPath(m *mesh.Mesh, h heuristics.Heuristic, ends endpoint.Ends, retrieveVertices bool) (*Path, error) {
	f, err := New(m)
	if err != nil {
		return nil, err
	}

	return f.Find(context.Background(), h, ends, WithVertices(retrieveVertices))
}
