package astar

// node is a frontier entry. index is its heap position, -1 once popped.
type node struct {
	face  int
	g, f  float64
	seq   uint64
	index int
}

// frontier is a min-heap of *node ordered by f, then g, then seq.
type frontier []*node

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.seq < b.seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontier) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]

	return n
}
