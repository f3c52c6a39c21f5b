package main

import (
	"container/heap"
)

// frontierItem is one heap entry. Entries are never removed on decrease-key;
// the superseded entry stays in the heap and is dropped when popped.
type frontierItem struct {
	key  SearchState
	node int // arena index
	g    float64
	f    float64
}

// PriorityQueue implements heap.Interface ordered by f
type PriorityQueue []frontierItem

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	return pq[i].f < pq[j].f
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(frontierItem))
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// Frontier is the open set: a min-heap on f plus an index from state to the
// best node known for it.
type Frontier struct {
	arena *arena
	queue PriorityQueue
	index map[SearchState]int
	stale int
}

func newFrontier(a *arena) *Frontier {
	f := &Frontier{
		arena: a,
		queue: PriorityQueue{},
		index: make(map[SearchState]int),
	}
	heap.Init(&f.queue)
	return f
}

// Push makes node the best known for its state and queues it
func (f *Frontier) Push(node int) {
	n := f.arena.get(node)
	f.index[n.State] = node
	heap.Push(&f.queue, frontierItem{key: n.State, node: node, g: n.G, f: n.F})
}

// PopMin removes the lowest-f live entry and drops its index entry.
// Stale entries met on the way are discarded.
func (f *Frontier) PopMin() (int, bool) {
	for f.queue.Len() > 0 {
		item := heap.Pop(&f.queue).(frontierItem)
		best, ok := f.index[item.key]
		if !ok || f.arena.get(best).G != item.g {
			f.stale++
			continue
		}
		delete(f.index, item.key)
		return best, true
	}
	return noParent, false
}

// BestKnown returns the arena index of the best open node for key
func (f *Frontier) BestKnown(key SearchState) (int, bool) {
	i, ok := f.index[key]
	return i, ok
}

// Contains reports whether key is currently open
func (f *Frontier) Contains(key SearchState) bool {
	_, ok := f.index[key]
	return ok
}

// Len is the number of open states, not heap entries
func (f *Frontier) Len() int { return len(f.index) }

// Stale is the number of superseded entries discarded so far
func (f *Frontier) Stale() int { return f.stale }
