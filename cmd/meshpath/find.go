package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/meshpath/meshio"
	"github.com/katalvlaran/meshpath/pathfinder"
)

func newFindCmd(a *app) *cobra.Command {
	var (
		ends     endsFlags
		vertices bool
	)

	cmd := &cobra.Command{
		Use:   "find MESH",
		Short: "Find the shortest path between two points of a mesh",
		Example: "  meshpath find pond.yaml --from-vertex 0 --to-vertex 24 --vertices\n" +
			"  meshpath find pond.yaml --from-face 3 --from-weights 0.2,0.3,0.5 --to-face 20",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ends.ends(cmd.Flags())
			if err != nil {
				return err
			}
			h, err := a.heuristic()
			if err != nil {
				return err
			}
			m, err := meshio.Load(args[0])
			if err != nil {
				return err
			}
			f, err := pathfinder.New(m, pathfinder.WithLogger(a.log))
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			p, err := f.Find(ctx, h, q, a.queryOptions(vertices)...)
			if err != nil {
				a.log.Debug("find failed", zap.String("mesh", args[0]), zap.Error(err))
				return err
			}

			printf(cmd, "query: %s\n", q)
			printf(cmd, "faces: %v\n", p.Faces)
			printf(cmd, "cost: %.6f\n", p.Cost)
			printf(cmd, "expanded: %d\n", p.Expanded)
			if vertices {
				printf(cmd, "vertices: %s\n", formatPolyline(p.Vertices))
				printf(cmd, "length: %.6f\n", p.Length())
			}

			return nil
		},
	}

	ends.bind(cmd.Flags())
	cmd.Flags().BoolVar(&vertices, "vertices", false, "also print the refined polyline")

	return cmd
}
