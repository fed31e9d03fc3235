package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/mesh"
)

// ExampleBuild lists the neighbours of a unit square split into two faces.
func ExampleBuild() {
	m, _ := mesh.New(
		[]mesh.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		[]mesh.Face{{0, 1, 2}, {0, 2, 3}},
	)
	g, err := adjacency.Build(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	for f := 0; f < g.NumFaces(); f++ {
		for _, nb := range g.Neighbors(f) {
			fmt.Printf("face %d -> face %d across %v, cost %.4f\n", f, nb.Face, nb.Edge, nb.Cost)
		}
	}

	// Output:
	// face 0 -> face 1 across [0 2], cost 0.4714
	// face 1 -> face 0 across [0 2], cost 0.4714
}
