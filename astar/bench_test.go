package astar_test

import (
	"testing"

	"github.com/katalvlaran/meshpath/astar"
	"github.com/katalvlaran/meshpath/heuristics"
	"github.com/katalvlaran/meshpath/internal/meshtest"
)

// BenchmarkSearch_Grid crosses a 100×100 grid corner to corner.
func BenchmarkSearch_Grid(b *testing.B) {
	m := meshtest.Grid(100)
	g := build(b, m)
	s, e := vertexOf(b, m, 0), vertexOf(b, m, 101*101-1)

	for name, h := range map[string]heuristics.Heuristic{
		"euclidean": heuristics.Euclidean(),
		"zero":      heuristics.Zero(),
	} {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := astar.Search(g, h, s, e); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSearch_Pond runs the classic pond crossing.
func BenchmarkSearch_Pond(b *testing.B) {
	m := meshtest.Pond()
	g := build(b, m)
	s, e := vertexOf(b, m, 0), vertexOf(b, m, 24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(g, heuristics.Euclidean(), s, e); err != nil {
			b.Fatal(err)
		}
	}
}
