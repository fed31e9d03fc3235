package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/internal/config"
	"github.com/katalvlaran/meshpath/mesh"
	"github.com/katalvlaran/meshpath/meshio"
	"github.com/katalvlaran/meshpath/pathfinder"
	"github.com/katalvlaran/meshpath/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		ends   endsFlags
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render MESH",
		Short: "Plot a mesh, and optionally a path over it",
		Example: "  meshpath render pond.yaml -o pond.png --from-vertex 0 --to-vertex 24\n" +
			"  meshpath render pond.yaml --format svg > pond.svg",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := meshio.Load(args[0])
			if err != nil {
				return err
			}
			proj, err := render.ParseProjection(a.cfg.Render.Projection)
			if err != nil {
				return err
			}

			var path []mesh.Vertex
			q, err := ends.ends(cmd.Flags())
			switch {
			case errors.Is(err, errNoEnds):
			case err != nil:
				return err
			default:
				if path, err = a.refinedPath(cmd, m, q); err != nil {
					return err
				}
			}

			if title == "" {
				title = filepath.Base(args[0])
			}
			p, err := render.Plot(m, path, render.WithTitle(title), render.WithProjection(proj))
			if err != nil {
				return err
			}

			w, h := a.cfg.Render.Width, a.cfg.Render.Height
			if output == "" {
				return render.WriteTo(cmd.OutOrStdout(), p, w, h, a.cfg.Render.Format)
			}
			if err := render.Save(output, p, w, h); err != nil {
				return err
			}
			a.log.Info("plot written", zap.String("file", output), zap.Int("path_points", len(path)))

			return nil
		},
	}

	ends.bind(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension picks the format (default stdout)")
	cmd.Flags().StringVar(&title, "title", "", "plot title (default the mesh file name)")
	config.BindRenderFlags(cmd.Flags())

	return cmd
}

// refinedPath answers q on m with vertex retrieval on.
func (a *app) refinedPath(cmd *cobra.Command, m *mesh.Mesh, q endpoint.Ends) ([]mesh.Vertex, error) {
	h, err := a.heuristic()
	if err != nil {
		return nil, err
	}
	f, err := pathfinder.New(m, pathfinder.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	ctx, cancel := a.withTimeout(cmd.Context())
	defer cancel()

	p, err := f.Find(ctx, h, q, a.queryOptions(true)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", q, err)
	}

	return p.Vertices, nil
}
