package astar

import "github.com/katalvlaran/gridpath/grid"

// frontierItem is one open-set entry. A cell may have several stale
// entries in the heap; only the first one popped is acted on.
type frontierItem struct {
	cell grid.Cell
	g    int
	f    int
	seq  int // push order, breaks ties between equal f
}

// frontier is a min-heap of *frontierItem ordered by f, then seq.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; equal f pops in push order.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved
// the minimum there.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
