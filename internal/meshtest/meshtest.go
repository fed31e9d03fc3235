// Package meshtest provides the reference meshes used across the test suites
// and benchmarks: a unit square, an irregular nine-vertex grid, the "pond"
// (a 5×5 grid with a hole) and generated square grids of any size.
package meshtest

import (
	"fmt"

	"github.com/katalvlaran/meshpath/mesh"
)

// SquareVertices and SquareFaces describe a unit square split along its 0-2 diagonal.
var (
	SquareVertices = []mesh.Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	SquareFaces = []mesh.Face{{0, 1, 2}, {0, 2, 3}}
)

// IrregularVertices and IrregularFaces describe a 3×3 vertex grid whose
// vertex 1 is pulled toward vertex 2, making the corridor through face 2
// cheaper than the one through faces 0 and 1.
var (
	IrregularVertices = []mesh.Vertex{
		{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	IrregularFaces = []mesh.Face{
		{0, 1, 4}, {0, 4, 3}, {1, 5, 4}, {1, 2, 5},
		{3, 4, 6}, {4, 7, 6}, {4, 8, 7}, {4, 5, 8},
	}
)

// PondFaces triangulates a 5×5 vertex grid (vertex i at (i%5, i/5, 0))
// around a hole: vertex 12 is used by no face.
var PondFaces = []mesh.Face{
	{0, 1, 5}, {1, 5, 6}, {1, 2, 6}, {2, 6, 7}, {2, 3, 7}, {3, 7, 8}, {3, 4, 8}, {4, 8, 9},
	{5, 11, 10}, {5, 6, 11}, {6, 7, 11}, {7, 8, 13}, {8, 13, 9}, {9, 14, 13},
	{10, 15, 16}, {10, 11, 16}, {11, 17, 16}, {13, 14, 19}, {13, 19, 18},
	{15, 21, 20}, {15, 16, 21}, {16, 22, 21}, {16, 17, 22}, {17, 22, 18},
	{18, 23, 22}, {18, 19, 24}, {18, 24, 23},
}

// PondVertices returns the 25 vertices of the pond grid.
func PondVertices() []mesh.Vertex {
	vs := make([]mesh.Vertex, 0, 25)
	for i := 0; i < 25; i++ {
		vs = append(vs, mesh.Vertex{X: float64(i % 5), Y: float64(i / 5)})
	}

	return vs
}

// Square returns the unit square mesh.
func Square() *mesh.Mesh { return must(mesh.New(SquareVertices, SquareFaces)) }

// Irregular returns the irregular nine-vertex grid.
func Irregular() *mesh.Mesh { return must(mesh.New(IrregularVertices, IrregularFaces)) }

// Pond returns the pond mesh.
func Pond() *mesh.Mesh { return must(mesh.New(PondVertices(), PondFaces)) }

// Grid returns an n×n grid of unit squares, each split into two faces,
// on the plane z = 0. Vertex (x, y) has index y*(n+1)+x.
func Grid(n int) *mesh.Mesh {
	w := n + 1
	vs := make([]mesh.Vertex, 0, w*w)
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			vs = append(vs, mesh.Vertex{X: float64(x), Y: float64(y)})
		}
	}
	fs := make([]mesh.Face, 0, 2*n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a := y*w + x
			fs = append(fs, mesh.Face{a, a + 1, a + w + 1}, mesh.Face{a, a + w + 1, a + w})
		}
	}

	return must(mesh.New(vs, fs))
}

func must(m *mesh.Mesh, err error) *mesh.Mesh {
	if err != nil {
		panic(fmt.Sprintf("meshtest: fixture rejected: %v", err))
	}

	return m
}
