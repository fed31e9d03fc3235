package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/heuristics"
)

// Search finds the cheapest face corridor from start to goal over g.
//
// Preconditions and validation (in order):
//  1. options are valid (ErrOptionViolation);
//  2. g is non-nil (ErrNilGraph) and h is non-nil (ErrNilHeuristic);
//  3. both endpoint faces are in range (ErrInvalidEndpoint).
//
// Faces in different connected components fail immediately with ErrNoPathFound.
func Search(g *adjacency.Graph, h heuristics.Heuristic, start, goal endpoint.Endpoint, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate collaborators.
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 3) Validate endpoint faces.
	n := g.NumFaces()
	if start.Face < 0 || start.Face >= n {
		return nil, fmt.Errorf("%w: start face %d, graph has %d faces", ErrInvalidEndpoint, start.Face, n)
	}
	if goal.Face < 0 || goal.Face >= n {
		return nil, fmt.Errorf("%w: goal face %d, graph has %d faces", ErrInvalidEndpoint, goal.Face, n)
	}

	// 4) Same face: the straight segment is the whole path.
	if start.Face == goal.Face {
		return &Result{
			Faces: []int{start.Face},
			Cost:  start.Position.Distance(goal.Position),
		}, nil
	}

	// 5) Different components never meet.
	if !g.Connected(start.Face, goal.Face) {
		return nil, fmt.Errorf("%w: faces %d and %d are not connected", ErrNoPathFound, start.Face, goal.Face)
	}

	// 6) Run.
	r := newRunner(g, h, goal, cfg)
	if err := r.push(start.Face, -1, start.Position.Distance(g.Centroid(start.Face))); err != nil {
		return nil, err
	}

	return r.process()
}

// runner holds the mutable state of a single search.
type runner struct {
	g    *adjacency.Graph
	h    heuristics.Heuristic
	goal endpoint.Endpoint
	opts Options

	cost   []float64 // best known g per face, +Inf if unseen
	prev   []int     // predecessor on the best known route, -1 for the start
	closed []bool
	open   []*node   // live frontier entry per face
	hval   []float64 // cached estimate per face, NaN until computed

	pq       frontier
	seq      uint64
	expanded int
}

func newRunner(g *adjacency.Graph, h heuristics.Heuristic, goal endpoint.Endpoint, opts Options) *runner {
	n := g.NumFaces()
	r := &runner{
		g:      g,
		h:      h,
		goal:   goal,
		opts:   opts,
		cost:   make([]float64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		open:   make([]*node, n),
		hval:   make([]float64, n),
		pq:     make(frontier, 0, 64),
	}
	for i := 0; i < n; i++ {
		r.cost[i] = math.Inf(1)
		r.prev[i] = -1
		r.hval[i] = math.NaN()
	}
	heap.Init(&r.pq)

	return r
}

// estimate returns h(face), computing it at most once per face.
func (r *runner) estimate(face int) (float64, error) {
	if v := r.hval[face]; !math.IsNaN(v) {
		return v, nil
	}
	v, err := r.h.Distance(r.g.Centroid(face), r.goal.Position)
	if err != nil {
		return 0, fmt.Errorf("%w: heuristic failed at face %d: %w", ErrSearchAborted, face, err)
	}
	if math.IsNaN(v) || v < 0 {
		return 0, fmt.Errorf("%w: heuristic returned %v at face %d", ErrSearchAborted, v, face)
	}
	r.hval[face] = v

	return v, nil
}

// push records route via from to face with cost g, inserting a frontier
// entry or re-keying the live one. A closed face is reopened.
func (r *runner) push(face, from int, g float64) error {
	hv, err := r.estimate(face)
	if err != nil {
		return err
	}
	r.cost[face] = g
	r.prev[face] = from
	r.closed[face] = false
	r.seq++

	if n := r.open[face]; n != nil {
		n.g, n.f, n.seq = g, g+hv, r.seq
		heap.Fix(&r.pq, n.index)

		return nil
	}
	n := &node{face: face, g: g, f: g + hv, seq: r.seq}
	heap.Push(&r.pq, n)
	r.open[face] = n

	return nil
}

// process is the main loop: pop the best entry, stop at the goal face,
// otherwise expand and relax its neighbours.
func (r *runner) process() (*Result, error) {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		// 1) Honour cancellation.
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrSearchAborted, ctx.Err())
		default:
		}

		// 2) Pop.
		n := heap.Pop(&r.pq).(*node)
		r.open[n.face] = nil

		// 3) Goal reached.
		if n.face == r.goal.Face {
			return r.result(n), nil
		}

		// 4) Budget.
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: expansion limit %d reached", ErrSearchAborted, r.opts.MaxExpansions)
		}

		// 5) Expand.
		r.closed[n.face] = true
		r.expanded++
		if err := r.opts.OnExpand(n.face, n.g); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSearchAborted, err)
		}
		for _, nb := range r.g.Neighbors(n.face) {
			g := n.g + nb.Cost
			if g >= r.cost[nb.Face] {
				continue
			}
			if err := r.push(nb.Face, n.face, g); err != nil {
				return nil, err
			}
		}
	}

	return nil, ErrNoPathFound
}

// result walks predecessors back from the goal entry.
func (r *runner) result(n *node) *Result {
	var faces []int
	for f := n.face; f >= 0; f = r.prev[f] {
		faces = append(faces, f)
	}
	for i, j := 0, len(faces)-1; i < j; i, j = i+1, j-1 {
		faces[i], faces[j] = faces[j], faces[i]
	}

	return &Result{
		Faces:    faces,
		Cost:     n.g + r.g.Centroid(n.face).Distance(r.goal.Position),
		Expanded: r.expanded,
	}
}
