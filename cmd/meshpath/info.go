package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/meshio"
)

func newInfoCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "info MESH",
		Short: "Print mesh and dual graph statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := meshio.Load(args[0])
			if err != nil {
				return err
			}
			g, err := adjacency.Build(m)
			if err != nil {
				return err
			}

			isolated := 0
			for v := 0; v < m.NumVertices(); v++ {
				if _, ok := m.FirstIncidentFace(v); !ok {
					isolated++
				}
			}
			b := m.Bounds()

			printf(cmd, "vertices: %d\n", m.NumVertices())
			printf(cmd, "isolated vertices: %d\n", isolated)
			printf(cmd, "faces: %d\n", m.NumFaces())
			printf(cmd, "shared edges: %d\n", g.NumEdges())
			printf(cmd, "components: %d\n", len(g.Components()))
			printf(cmd, "bounds: %s %s\n", formatVertex(b.Min), formatVertex(b.Max))

			return nil
		},
	}
}
