package pathfinder_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/heuristics"
	"github.com/katalvlaran/meshpath/internal/meshtest"
	"github.com/katalvlaran/meshpath/pathfinder"
)

// BenchmarkFind_Pond measures a full query (resolve, search, refine) on a built Finder.
func BenchmarkFind_Pond(b *testing.B) {
	f, err := pathfinder.New(meshtest.Pond())
	if err != nil {
		b.Fatal(err)
	}
	h := heuristics.Euclidean()
	ends := endpoint.Vertices(0, 24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Find(context.Background(), h, ends, pathfinder.WithRetrieveVertices()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindAll_Grid runs 64 corner-to-corner style queries on a 60×60 grid.
func BenchmarkFindAll_Grid(b *testing.B) {
	const n = 60
	f, err := pathfinder.New(meshtest.Grid(n))
	if err != nil {
		b.Fatal(err)
	}
	queries := make([]endpoint.Ends, 0, 64)
	for i := 0; i < 64; i++ {
		queries = append(queries, endpoint.Vertices(i, (n+1)*(n+1)-1-i))
	}
	h := heuristics.Euclidean()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.FindAll(context.Background(), h, queries, pathfinder.WithRetrieveVertices()); err != nil {
			b.Fatal(err)
		}
	}
}
