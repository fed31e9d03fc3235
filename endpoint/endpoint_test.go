package endpoint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/internal/meshtest"
	"github.com/katalvlaran/meshpath/mesh"
)

func TestFromBarycenter_Valid(t *testing.T) {
	m := meshtest.Square()
	ep, err := endpoint.FromBarycenter(m, mesh.Barycenter{Face: 1, Weights: [3]float64{0.5, 0.25, 0.25}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, ep.Face)
	// face 1 = (0,0), (1,1), (0,1)
	assert.InDelta(t, 0.25, ep.Position.X, 1e-12)
	assert.InDelta(t, 0.5, ep.Position.Y, 1e-12)
	assert.Equal(t, mesh.Barycenter{Face: 1, Weights: [3]float64{0.5, 0.25, 0.25}}, ep.Barycenter())
}

func TestFromBarycenter_ClampsWithinTolerance(t *testing.T) {
	m := meshtest.Square()
	ep, err := endpoint.FromBarycenter(m, mesh.Barycenter{Face: 0, Weights: [3]float64{-1e-8, 0.5, 0.5 + 1e-8}}, endpoint.DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ep.Weights[0])
	assert.InDelta(t, 1.0, ep.Weights[0]+ep.Weights[1]+ep.Weights[2], 1e-15)
}

func TestFromBarycenter_Rejects(t *testing.T) {
	m := meshtest.Square()
	cases := []struct {
		name string
		b    mesh.Barycenter
	}{
		{"face too large", mesh.Barycenter{Face: 2, Weights: [3]float64{1, 0, 0}}},
		{"negative face", mesh.Barycenter{Face: -1, Weights: [3]float64{1, 0, 0}}},
		{"negative weight", mesh.Barycenter{Face: 0, Weights: [3]float64{-0.1, 0.6, 0.5}}},
		{"sum too small", mesh.Barycenter{Face: 0, Weights: [3]float64{0.2, 0.2, 0.2}}},
		{"sum too large", mesh.Barycenter{Face: 0, Weights: [3]float64{1, 1, 0}}},
		{"NaN", mesh.Barycenter{Face: 0, Weights: [3]float64{math.NaN(), 0.5, 0.5}}},
		{"infinite", mesh.Barycenter{Face: 0, Weights: [3]float64{math.Inf(1), 0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := endpoint.FromBarycenter(m, tc.b, 0)
			assert.ErrorIs(t, err, endpoint.ErrInvalidEndpoint)
		})
	}

	_, err := endpoint.FromBarycenter(nil, mesh.Barycenter{}, 0)
	assert.ErrorIs(t, err, endpoint.ErrInvalidEndpoint)
}

func TestFromVertex(t *testing.T) {
	m := meshtest.Pond()
	for v := 0; v < m.NumVertices(); v++ {
		if v == 12 {
			continue
		}
		ep, err := endpoint.FromVertex(m, v)
		require.NoError(t, err, "vertex %d", v)

		first, _ := m.FirstIncidentFace(v)
		assert.Equal(t, first, ep.Face)

		ones, zeros := 0, 0
		for _, w := range ep.Weights {
			switch w {
			case 1:
				ones++
			case 0:
				zeros++
			}
		}
		assert.Equal(t, 1, ones, "vertex %d weights %v", v, ep.Weights)
		assert.Equal(t, 2, zeros)
		assert.Equal(t, 1.0, ep.Weights[m.Corner(ep.Face, v)])

		want, _ := m.Vertex(v)
		assert.Equal(t, want, ep.Position)
	}
}

func TestFromVertex_Errors(t *testing.T) {
	m := meshtest.Pond()

	_, err := endpoint.FromVertex(m, 12)
	assert.ErrorIs(t, err, endpoint.ErrIsolatedVertex)

	_, err = endpoint.FromVertex(m, 25)
	assert.ErrorIs(t, err, endpoint.ErrInvalidEndpoint)
	_, err = endpoint.FromVertex(m, -1)
	assert.ErrorIs(t, err, endpoint.ErrInvalidEndpoint)
}

func TestEnds_Resolve(t *testing.T) {
	m := meshtest.Square()

	p, err := endpoint.Vertices(1, 3).Resolve(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Start.Face)
	assert.Equal(t, 1, p.Goal.Face)

	p, err = endpoint.Barycentric(
		mesh.Barycenter{Face: 0, Weights: [3]float64{1, 0, 0}},
		mesh.Barycenter{Face: 1, Weights: [3]float64{0, 0, 1}},
	).Resolve(m, 0)
	require.NoError(t, err)
	assert.Equal(t, mesh.Vertex{}, p.Start.Position)
	assert.Equal(t, mesh.Vertex{Y: 1}, p.Goal.Position)

	mixed := endpoint.Ends{Start: endpoint.AtVertex(1), Goal: endpoint.AtBarycenter(mesh.Barycenter{Face: 1, Weights: [3]float64{0, 1, 0}})}
	p, err = mixed.Resolve(m, 0)
	require.NoError(t, err)
	assert.Equal(t, mesh.Vertex{X: 1}, p.Start.Position)
	assert.Equal(t, mesh.Vertex{X: 1, Y: 1}, p.Goal.Position)
	assert.Equal(t, "vertex 1 -> face 1 [0 1 0]", mixed.String())
}

func TestEnds_ResolveErrors(t *testing.T) {
	m := meshtest.Pond()

	_, err := endpoint.Ends{Start: endpoint.AtVertex(0)}.Resolve(m, 0)
	assert.ErrorIs(t, err, endpoint.ErrInvalidEndpoint)

	_, err = endpoint.Vertices(0, 12).Resolve(m, 0)
	assert.ErrorIs(t, err, endpoint.ErrIsolatedVertex)
	assert.Contains(t, err.Error(), "goal")

	_, err = endpoint.Vertices(99, 0).Resolve(m, 0)
	assert.ErrorIs(t, err, endpoint.ErrInvalidEndpoint)
	assert.Contains(t, err.Error(), "start")
}
