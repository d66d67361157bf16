package astar

import (
	"cmp"
	"container/heap"
	"slices"
)

type queueItem struct {
	node  Node
	fCost int
	seq   uint64
	index int
}

// priorityQueue is a min-heap on fCost; equal costs pop in insertion order.
type priorityQueue []*queueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].fCost != queue[j].fCost {
		return queue[i].fCost < queue[j].fCost
	}
	return queue[i].seq < queue[j].seq
}
func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].index = i
	queue[j].index = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.index = -1
	*queue = oldQueue[:n-1]
	return item
}

// Frontier is the open set: nodes discovered but not yet expanded, keyed by
// their current f-score. Each node appears at most once.
type Frontier struct {
	queue   priorityQueue
	items   map[Node]*queueItem
	nextSeq uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{items: make(map[Node]*queueItem)}
}

// PushIfBetter inserts n with priority f, or lowers the priority of an
// existing entry when f improves on it. It reports whether the frontier
// changed. A lowered entry keeps its first insertion order.
func (f *Frontier) PushIfBetter(n Node, fCost int) bool {
	if item, ok := f.items[n]; ok {
		if fCost >= item.fCost {
			return false
		}
		item.fCost = fCost
		heap.Fix(&f.queue, item.index)
		return true
	}
	item := &queueItem{node: n, fCost: fCost, seq: f.nextSeq}
	f.nextSeq++
	heap.Push(&f.queue, item)
	f.items[n] = item
	return true
}

// PopMin removes and returns the node with the lowest f-score.
func (f *Frontier) PopMin() (Node, int, bool) {
	if f.queue.Len() == 0 {
		return Node{}, 0, false
	}
	item := heap.Pop(&f.queue).(*queueItem)
	delete(f.items, item.node)
	return item.node, item.fCost, true
}

// Contains reports whether n is waiting in the frontier.
func (f *Frontier) Contains(n Node) bool {
	_, ok := f.items[n]
	return ok
}

// IsEmpty reports whether nothing is left to expand.
func (f *Frontier) IsEmpty() bool { return f.queue.Len() == 0 }

// Len returns the number of queued nodes.
func (f *Frontier) Len() int { return f.queue.Len() }

// Nodes returns the queued nodes in insertion order.
func (f *Frontier) Nodes() []Node {
	items := make([]*queueItem, len(f.queue))
	copy(items, f.queue)
	slices.SortFunc(items, func(a, b *queueItem) int { return cmp.Compare(a.seq, b.seq) })
	out := make([]Node, len(items))
	for i, item := range items {
		out[i] = item.node
	}
	return out
}
