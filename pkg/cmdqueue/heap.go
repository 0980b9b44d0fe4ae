package cmdqueue

import "container/heap"

// heapStrategy keeps a single array-backed binary heap ordered by the
// composite (class rank, sequence) key. It scales to any number of
// priority classes without restructuring, unlike the bucket strategy.
type heapStrategy struct {
	entries commandHeap
}

func newHeapStrategy() *heapStrategy {
	hs := &heapStrategy{}
	heap.Init(&hs.entries)
	return hs
}

func (hs *heapStrategy) push(cmd Command) {
	heap.Push(&hs.entries, cmd)
}

func (hs *heapStrategy) pop() (Command, bool) {
	if hs.entries.Len() == 0 {
		return Command{}, false
	}
	return heap.Pop(&hs.entries).(Command), true
}

func (hs *heapStrategy) peek() (Command, bool) {
	if hs.entries.Len() == 0 {
		return Command{}, false
	}
	return hs.entries[0], true
}

func (hs *heapStrategy) size() int {
	return hs.entries.Len()
}

// commandHeap implements heap.Interface over the composite key. Less must
// be a strict ordering: a higher class outranks, and within a class the
// smaller sequence (older arrival) outranks.
type commandHeap []Command

func (h commandHeap) Len() int { return len(h) }

func (h commandHeap) Less(i, j int) bool {
	return h[i].outranks(h[j])
}

func (h commandHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *commandHeap) Push(x interface{}) {
	*h = append(*h, x.(Command))
}

func (h *commandHeap) Pop() interface{} {
	old := *h
	n := len(old)
	cmd := old[n-1]
	*h = old[0 : n-1]
	return cmd
}
