package adjacency

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// ToWeighted converts the dual graph into a gonum weighted undirected graph.
// Node IDs are face indices; edge weights are centroid distances.
// Complexity: O(F) time and memory.
func (g *Graph) ToWeighted() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for f := range g.neighbors {
		wg.AddNode(simple.Node(f))
	}
	for f, list := range g.neighbors {
		for _, nb := range list {
			if nb.Face < f {
				continue // added from the other side
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(f), simple.Node(nb.Face), nb.Cost))
		}
	}

	return wg
}
