package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/internal/meshtest"
)

// BenchmarkBuild measures dual-graph construction on a 200×200 grid (80 000 faces).
// Complexity: O(F)
func BenchmarkBuild(b *testing.B) {
	m := meshtest.Grid(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := adjacency.Build(m); err != nil {
			b.Fatal(err)
		}
	}
}
