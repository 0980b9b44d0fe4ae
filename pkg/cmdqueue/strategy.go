package cmdqueue

// strategy is the internal placement algorithm behind the queue facade.
// Implementations are not safe for concurrent use; the facade serializes
// all access under its own mutex.
type strategy interface {
	// push places an admitted command.
	push(cmd Command)
	// pop removes and returns the resident command that outranks all
	// others, or reports false when none is resident.
	pop() (Command, bool)
	// peek returns the command pop would return without removing it.
	peek() (Command, bool)
	// size returns the resident command count.
	size() int
}

// StrategyName selects the placement algorithm for a queue.
type StrategyName string

const (
	// StrategyBucket keeps one FIFO list per class; O(1) push, pop scans
	// classes highest first. The fast path for a small fixed class set.
	StrategyBucket StrategyName = "bucket"
	// StrategyHeap keeps a single binary heap ordered by (class, sequence);
	// O(log n) push and pop, indifferent to the number of classes.
	StrategyHeap StrategyName = "heap"
)

func newStrategy(name StrategyName, classes ClassSet) strategy {
	switch name {
	case StrategyHeap:
		return newHeapStrategy()
	default:
		return newBucketStrategy(classes)
	}
}
