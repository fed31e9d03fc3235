package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/heuristics"
	"github.com/katalvlaran/meshpath/mesh"
	"github.com/katalvlaran/meshpath/meshio"
	"github.com/katalvlaran/meshpath/pathfinder"
)

var errQueriesFailed = errors.New("queries failed")

// batchItem is one query of the document with its resolved ends.
type batchItem struct {
	mesh string
	ends endpoint.Ends
	path *pathfinder.Path
	err  error
}

func newBatchCmd(a *app) *cobra.Command {
	var vertices bool

	cmd := &cobra.Command{
		Use:   "batch QUERIES",
		Short: "Run every query of a query document, in parallel per mesh",
		Long: "QUERIES is a YAML document:\n\n" +
			"  meshes: {pond: pond.yaml}\n" +
			"  queries:\n" +
			"    - {mesh: pond, start: {vertex: 0}, goal: {vertex: 24}}\n" +
			"    - {mesh: pond, start: {face: 3, weights: [0.2, 0.3, 0.5]}, goal: {face: 20}}\n\n" +
			"Mesh paths are relative to the document. One line is printed per query.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qf, err := meshio.LoadQueries(args[0])
			if err != nil {
				return err
			}
			h, err := a.heuristic()
			if err != nil {
				return err
			}
			reg, err := pathfinder.NewRegistry(a.cfg.Search.CacheSize, func(_ context.Context, name string) (*mesh.Mesh, error) {
				return meshio.Load(qf.Meshes[name])
			}, pathfinder.WithLogger(a.log))
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			items := make([]batchItem, len(qf.Queries))
			var order []string
			byMesh := make(map[string][]int)
			for i, q := range qf.Queries {
				items[i].mesh = q.Mesh
				items[i].ends, items[i].err = q.Ends()
				if items[i].err != nil {
					continue
				}
				if _, seen := byMesh[q.Mesh]; !seen {
					order = append(order, q.Mesh)
				}
				byMesh[q.Mesh] = append(byMesh[q.Mesh], i)
			}

			for _, name := range order {
				if err := runMesh(ctx, a, reg, h, name, byMesh[name], items, vertices); err != nil {
					return err
				}
			}

			failed := 0
			for i, it := range items {
				if it.err != nil {
					failed++
					printf(cmd, "%d\t%s\t%s\terror: %v\n", i, it.mesh, it.ends, it.err)
					continue
				}
				printf(cmd, "%d\t%s\t%s\tcost %.6f\tfaces %d", i, it.mesh, it.ends, it.path.Cost, len(it.path.Faces))
				if vertices {
					printf(cmd, "\tlength %.6f", it.path.Length())
				}
				printf(cmd, "\n")
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errQueriesFailed, failed, len(items))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&vertices, "vertices", false, "refine paths and print their length")

	return cmd
}

// runMesh answers the queries at idx, which all use the mesh called name.
// Only cancellation is returned; per-query failures land in items.
func runMesh(ctx context.Context, a *app, reg *pathfinder.Registry, h heuristics.Heuristic, name string, idx []int, items []batchItem, vertices bool) error {
	f, err := reg.Get(ctx, name)
	if err != nil {
		a.log.Warn("mesh unavailable", zap.String("mesh", name), zap.Error(err))
		for _, i := range idx {
			items[i].err = err
		}

		return nil
	}

	queries := make([]endpoint.Ends, len(idx))
	for k, i := range idx {
		queries[k] = items[i].ends
	}
	outs, err := f.FindAll(ctx, h, queries, a.queryOptions(vertices)...)
	if err != nil {
		return err
	}
	for k, o := range outs {
		items[idx[k]].path, items[idx[k]].err = o.Path, o.Err
	}

	return nil
}
