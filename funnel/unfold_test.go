package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/internal/meshtest"
	"github.com/katalvlaran/meshpath/mesh"
)

// Unfolding preserves every edge length of every corridor face.
func TestUnfold_IsIsometricPerFace(t *testing.T) {
	m := meshtest.Pond()
	g, err := adjacency.Build(m)
	require.NoError(t, err)
	corridor := []int{0, 1, 9, 8, 15, 16, 22, 23, 24, 26}

	flat, edges, err := unfold(g, corridor)
	require.NoError(t, err)
	require.Len(t, edges, len(corridor)-1)
	for i, f := range flat {
		tri, err := m.Triangle(corridor[i])
		require.NoError(t, err)
		for k := 0; k < 3; k++ {
			want := tri[k].Distance(tri[(k+1)%3])
			got := f.pts[k].Sub(f.pts[(k+1)%3]).Norm()
			assert.InDelta(t, want, got, 1e-12, "face %d side %d", corridor[i], k)
		}
	}
}

func TestUnfold_FlattensFold(t *testing.T) {
	m, err := mesh.New([]mesh.Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: -1, Z: 0},
		{X: 0.5, Y: 0, Z: 1},
	}, []mesh.Face{{0, 1, 2}, {1, 0, 3}})
	require.NoError(t, err)
	g, err := adjacency.Build(m)
	require.NoError(t, err)

	flat, edges, err := unfold(g, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []adjacency.Edge{{0, 1}}, edges)

	// The two apexes end up on opposite sides of the hinge, 2 apart.
	assert.InDelta(t, 2.0, flat[0].at(2).Sub(flat[1].at(3)).Norm(), 1e-12)
}
