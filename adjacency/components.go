package adjacency

// label flood-fills the dual graph, seeding from faces in ascending order.
// Time: O(F), Memory: O(F).
func (g *Graph) label() {
	n := len(g.neighbors)
	g.component = make([]int, n)
	for i := range g.component {
		g.component[i] = -1
	}

	for seed := 0; seed < n; seed++ {
		if g.component[seed] >= 0 {
			continue
		}
		id := len(g.components)
		queue := []int{seed}
		g.component[seed] = id
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, nb := range g.neighbors[u] {
				if g.component[nb.Face] < 0 {
					g.component[nb.Face] = id
					queue = append(queue, nb.Face)
				}
			}
		}
		g.components = append(g.components, queue)
	}
}

// Components returns the connected components of the dual graph.
// Components are ordered by their lowest face; each lists its faces in
// breadth-first order from that face.
func (g *Graph) Components() [][]int {
	out := make([][]int, len(g.components))
	for i, c := range g.components {
		out[i] = append([]int(nil), c...)
	}

	return out
}

// Component returns the component label of face, or -1 if face is out of range.
func (g *Graph) Component(face int) int {
	if face < 0 || face >= len(g.component) {
		return -1
	}

	return g.component[face]
}

// Connected reports whether a path of shared edges joins faces a and b.
func (g *Graph) Connected(a, b int) bool {
	ca, cb := g.Component(a), g.Component(b)

	return ca >= 0 && ca == cb
}
