package astar_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/meshpath/adjacency"
	"github.com/katalvlaran/meshpath/astar"
	"github.com/katalvlaran/meshpath/endpoint"
	"github.com/katalvlaran/meshpath/heuristics"
	"github.com/katalvlaran/meshpath/internal/meshtest"
	"github.com/katalvlaran/meshpath/mesh"
)

func build(t testing.TB, m *mesh.Mesh) *adjacency.Graph {
	t.Helper()
	g, err := adjacency.Build(m)
	require.NoError(t, err)

	return g
}

func centroidOf(t testing.TB, m *mesh.Mesh, f int) endpoint.Endpoint {
	t.Helper()
	ep, err := endpoint.FromBarycenter(m, mesh.Barycenter{Face: f, Weights: [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}}, 0)
	require.NoError(t, err)

	return ep
}

func vertexOf(t testing.TB, m *mesh.Mesh, v int) endpoint.Endpoint {
	t.Helper()
	ep, err := endpoint.FromVertex(m, v)
	require.NoError(t, err)

	return ep
}

func TestSearch_Validation(t *testing.T) {
	m := meshtest.Square()
	g := build(t, m)
	s, e := vertexOf(t, m, 1), vertexOf(t, m, 3)

	_, err := astar.Search(nil, heuristics.Euclidean(), s, e)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	_, err = astar.Search(g, nil, s, e)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, err = astar.Search(g, heuristics.Euclidean(), s, e, astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	bad := e
	bad.Face = 7
	_, err = astar.Search(g, heuristics.Euclidean(), s, bad)
	assert.ErrorIs(t, err, astar.ErrInvalidEndpoint)
	_, err = astar.Search(g, heuristics.Euclidean(), bad, e)
	assert.ErrorIs(t, err, astar.ErrInvalidEndpoint)
}

func TestSearch_Square(t *testing.T) {
	m := meshtest.Square()
	res, err := astar.Search(build(t, m), heuristics.Euclidean(), vertexOf(t, m, 1), vertexOf(t, m, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Faces)
	assert.InDelta(t, math.Sqrt2, res.Cost, 1e-12)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_PrefersCheaperCorridor(t *testing.T) {
	m := meshtest.Irregular()
	g := build(t, m)
	for _, h := range []heuristics.Heuristic{heuristics.Euclidean(), heuristics.Zero()} {
		res, err := astar.Search(g, h, centroidOf(t, m, 3), centroidOf(t, m, 5))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 7, 6, 5}, res.Faces)
		assert.InDelta(t, 2.2967, res.Cost, 1e-4)
	}
}

func TestSearch_SameFace(t *testing.T) {
	m := meshtest.Square()
	s, err := endpoint.FromBarycenter(m, mesh.Barycenter{Face: 0, Weights: [3]float64{1, 0, 0}}, 0)
	require.NoError(t, err)
	e, err := endpoint.FromBarycenter(m, mesh.Barycenter{Face: 0, Weights: [3]float64{0, 0, 1}}, 0)
	require.NoError(t, err)

	calls := 0
	res, err := astar.Search(build(t, m), heuristics.Euclidean(), s, e,
		astar.WithOnExpand(func(int, float64) error { calls++; return nil }))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Faces)
	assert.InDelta(t, math.Sqrt2, res.Cost, 1e-12)
	assert.Zero(t, res.Expanded)
	assert.Zero(t, calls)
}

func TestSearch_Disconnected(t *testing.T) {
	vs := []mesh.Vertex{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 5}, {X: 6}, {X: 6, Y: 1}}
	m, err := mesh.New(vs, []mesh.Face{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)

	_, err = astar.Search(build(t, m), heuristics.Euclidean(), centroidOf(t, m, 0), centroidOf(t, m, 1))
	assert.ErrorIs(t, err, astar.ErrNoPathFound)
}

func TestSearch_Aborts(t *testing.T) {
	m := meshtest.Pond()
	g := build(t, m)
	s, e := vertexOf(t, m, 0), vertexOf(t, m, 24)

	t.Run("budget", func(t *testing.T) {
		_, err := astar.Search(g, heuristics.Euclidean(), s, e, astar.WithMaxExpansions(2))
		assert.ErrorIs(t, err, astar.ErrSearchAborted)
	})

	t.Run("context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := astar.Search(g, heuristics.Euclidean(), s, e, astar.WithContext(ctx))
		assert.ErrorIs(t, err, astar.ErrSearchAborted)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("hook", func(t *testing.T) {
		stop := errors.New("stop")
		_, err := astar.Search(g, heuristics.Euclidean(), s, e,
			astar.WithOnExpand(func(int, float64) error { return stop }))
		assert.ErrorIs(t, err, astar.ErrSearchAborted)
		assert.ErrorIs(t, err, stop)
	})

	bad := map[string]heuristics.Heuristic{
		"error":    heuristics.Func(func(mesh.Vertex, mesh.Vertex) (float64, error) { return 0, errors.New("boom") }),
		"negative": heuristics.Func(func(mesh.Vertex, mesh.Vertex) (float64, error) { return -1, nil }),
		"NaN":      heuristics.Func(func(mesh.Vertex, mesh.Vertex) (float64, error) { return math.NaN(), nil }),
	}
	for name, h := range bad {
		t.Run("heuristic "+name, func(t *testing.T) {
			_, err := astar.Search(g, h, s, e)
			assert.ErrorIs(t, err, astar.ErrSearchAborted)
		})
	}
}

func TestSearch_BudgetLargeEnoughSucceeds(t *testing.T) {
	m := meshtest.Pond()
	g := build(t, m)
	free, err := astar.Search(g, heuristics.Euclidean(), vertexOf(t, m, 0), vertexOf(t, m, 24))
	require.NoError(t, err)

	capped, err := astar.Search(g, heuristics.Euclidean(), vertexOf(t, m, 0), vertexOf(t, m, 24),
		astar.WithMaxExpansions(free.Expanded))
	require.NoError(t, err)
	assert.Equal(t, free.Faces, capped.Faces)
}

// Costs agree with gonum's Dijkstra over the exported dual graph, for both
// the zero and the Euclidean heuristic.
func TestSearch_MatchesDijkstra(t *testing.T) {
	for name, m := range map[string]*mesh.Mesh{
		"pond":      meshtest.Pond(),
		"grid":      meshtest.Grid(5),
		"irregular": meshtest.Irregular(),
	} {
		t.Run(name, func(t *testing.T) {
			g := build(t, m)
			wg := g.ToWeighted()
			for s := 0; s < g.NumFaces(); s += 3 {
				sp := path.DijkstraFrom(simple.Node(s), wg)
				for e := 0; e < g.NumFaces(); e++ {
					want := sp.WeightTo(int64(e))
					for _, h := range []heuristics.Heuristic{heuristics.Zero(), heuristics.Euclidean()} {
						res, err := astar.Search(g, h, centroidOf(t, m, s), centroidOf(t, m, e))
						require.NoError(t, err)
						assert.InDelta(t, want, res.Cost, 1e-9, "%d -> %d", s, e)
						assertCorridor(t, g, res, s, e)
					}
				}
			}
		})
	}
}

func assertCorridor(t *testing.T, g *adjacency.Graph, res *astar.Result, s, e int) {
	t.Helper()
	require.NotEmpty(t, res.Faces)
	assert.Equal(t, s, res.Faces[0])
	assert.Equal(t, e, res.Faces[len(res.Faces)-1])
	seen := map[int]bool{}
	for i, f := range res.Faces {
		assert.False(t, seen[f], "face %d repeated", f)
		seen[f] = true
		if i > 0 {
			_, ok := g.SharedEdge(res.Faces[i-1], f)
			assert.True(t, ok, "faces %d and %d are not adjacent", res.Faces[i-1], f)
		}
	}
}

func TestSearch_EuclideanExpandsLess(t *testing.T) {
	m := meshtest.Grid(20)
	g := build(t, m)
	s, e := vertexOf(t, m, 0), vertexOf(t, m, 21*21-1)

	dij, err := astar.Search(g, heuristics.Zero(), s, e)
	require.NoError(t, err)
	ast, err := astar.Search(g, heuristics.Euclidean(), s, e)
	require.NoError(t, err)

	assert.InDelta(t, dij.Cost, ast.Cost, 1e-9)
	assert.Less(t, ast.Expanded, dij.Expanded)
}
