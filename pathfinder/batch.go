package pathfinder

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/heuristics"
)

// Outcome is the result of one query in a batch.
type Outcome struct {
	Index int
	Ends  endpoint.Ends
	Path  *Path
	Err   error
}

// FindAll answers every query in parallel, at most WithWorkers at a time.
// Outcomes are returned in query order; a failing query records its error
// in its Outcome and does not stop the others. The returned error is
// non-nil only for invalid options or when ctx ends before the batch does.
func (f *Finder) FindAll(ctx context.Context, h heuristics.Heuristic, queries []endpoint.Ends, opts ...QueryOption) ([]Outcome, error) {
	q, err := applyQueryOptions(opts)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	out := make([]Outcome, len(queries))
	var eg errgroup.Group
	eg.SetLimit(q.workers)
	for i, ends := range queries {
		i, ends := i, ends
		eg.Go(func() error {
			p, err := f.find(ctx, h, ends, q)
			out[i] = Outcome{Index: i, Ends: ends, Path: p, Err: err}

			return nil
		})
	}
	_ = eg.Wait()

	failed := 0
	for _, o := range out {
		if o.Err != nil {
			failed++
		}
	}
	f.log.Info("batch finished",
		zap.Int("queries", len(queries)),
		zap.Int("failed", failed),
		zap.Int("workers", q.workers),
		zap.Duration("took", time.Since(began)),
	)

	return out, ctx.Err()
}
