// Package cmdqueue provides a concurrency-safe, priority-ordered command
// queue for sequencing instructions sent to a remote-controller runtime.
//
// Invariants:
// - A command of a higher class is always released before any resident
//   command of a lower class, regardless of arrival time.
// - Commands of equal class are released in arrival order.
// - The sequence counter is process-lifetime monotonic and never reused,
//   even across emptied-and-refilled queue states.
// - Queue activity is observable through enqueued/dequeued events and
//   metrics.
//
// Usage:
//
//	queue := cmdqueue.New(cmdqueue.WithStrategy(cmdqueue.StrategyHeap))
//	id, err := queue.Enqueue("EMERGENCY_SHUTDOWN", nil, cmdqueue.ClassHigh)
//	if cmd, ok := queue.Dequeue(); ok {
//		execute(cmd)
//	}
package cmdqueue
