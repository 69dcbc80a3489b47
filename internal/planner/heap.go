package planner

import "container/heap"

// node is one entry in the A* open set: a world-state identity, the best
// known cost-so-far to reach it (g), and the priority f = g + h. seq
// breaks remaining ties by insertion order so plans are deterministic.
type node struct {
	id  uint64
	g   float64
	f   float64
	seq int
}

// openSet is a min-heap over node.f, with tie-break by higher g then by
// lower seq (earlier insertion), implementing container/heap.Interface.
type openSet []*node

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	a, b := o[i], o[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x any) { *o = append(*o, x.(*node)) }

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}

var _ heap.Interface = (*openSet)(nil)
