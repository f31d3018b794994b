// Package pqueue implements the priority queue the maze search pushes its
// expansion frontier through: a container/heap min-heap ordered by f, ties
// broken by smaller g, with elements recycled through a free list instead of
// being garbage-collected on every pop.
//
// Grounded on github.com/katalvlaran/lvlath's dijkstra package: the element
// type and heap methods follow its nodePQ/nodeItem shape (container/heap,
// lazy-decrease-key, lint-clean Len/Less/Swap/Push/Pop) directly, with the
// element widened from a single (id, dist) pair to the (door, section,
// g, h, back-pointer) tuple a maze search state needs, and a free list
// added around it.
package pqueue

import "container/heap"

// Element is one frontier entry. Fields beyond G/H are opaque payload the
// maze search interprets; pqueue only orders by F (= G+H) and, on ties, G.
type Element struct {
	F, G        int64
	Door        uint32
	Section     int
	Room        uint32
	BackDoor    uint32
	BackSection int
	EntryX      int64
	EntryY      int64
	RoomRipped  bool
	index       int // heap index, maintained by container/heap
}

type minHeap []*Element

func (h minHeap) Len() int { return len(h) }

func (h minHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}

	return h[i].G < h[j].G
}

func (h minHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *minHeap) Push(x interface{}) {
	e := x.(*Element)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}

// Queue is a min-heap of *Element with an attached free list: elements
// handed back via Release are reused by the next Acquire instead of being
// reallocated. Queue is not safe for concurrent use; each maze search owns
// one for the lifetime of a single search.
type Queue struct {
	heap minHeap
	free []*Element
}

// New returns an empty queue with capacity pre-reserved for n elements.
func New(n int) *Queue {
	return &Queue{heap: make(minHeap, 0, n)}
}

// Acquire returns a zeroed element, reusing one from the free list if
// available.
func (q *Queue) Acquire() *Element {
	if n := len(q.free); n > 0 {
		e := q.free[n-1]
		q.free = q.free[:n-1]
		*e = Element{}

		return e
	}

	return &Element{}
}

// Push inserts e into the heap.
func (q *Queue) Push(e *Element) {
	heap.Push(&q.heap, e)
}

// Pop removes and returns the minimum element, or nil if the queue is
// empty.
func (q *Queue) Pop() *Element {
	if q.heap.Len() == 0 {
		return nil
	}

	return heap.Pop(&q.heap).(*Element)
}

// Release returns e to the free list so a future Acquire can reuse its
// allocation. Callers must not touch e again after releasing it.
func (q *Queue) Release(e *Element) {
	q.free = append(q.free, e)
}

// Len reports the number of elements currently queued.
func (q *Queue) Len() int {
	return q.heap.Len()
}
