package cmdqueue

import "fmt"

// bucketStrategy keeps one FIFO slice per configured class. Push appends
// to the slice matching the command's class; pop scans classes from
// highest rank down and takes the front of the first non-empty slice.
// FIFO within a class falls out of the append/remove-from-head discipline,
// with the facade-assigned sequence kept only for observability.
type bucketStrategy struct {
	buckets [][]Command
	count   int
}

func newBucketStrategy(classes ClassSet) *bucketStrategy {
	return &bucketStrategy{
		buckets: make([][]Command, len(classes)),
	}
}

func (bs *bucketStrategy) push(cmd Command) {
	if cmd.rank < 0 || cmd.rank >= len(bs.buckets) {
		// The facade validates classes before placement; reaching here is
		// a programming defect, not a user-facing condition.
		panic(fmt.Sprintf("cmdqueue: bucket rank %d out of range [0,%d)", cmd.rank, len(bs.buckets)))
	}
	bs.buckets[cmd.rank] = append(bs.buckets[cmd.rank], cmd)
	bs.count++
}

func (bs *bucketStrategy) pop() (Command, bool) {
	for rank, bucket := range bs.buckets {
		if len(bucket) == 0 {
			continue
		}
		cmd := bucket[0]
		bs.buckets[rank] = bucket[1:]
		bs.count--
		return cmd, true
	}
	return Command{}, false
}

func (bs *bucketStrategy) peek() (Command, bool) {
	for _, bucket := range bs.buckets {
		if len(bucket) > 0 {
			return bucket[0], true
		}
	}
	return Command{}, false
}

func (bs *bucketStrategy) size() int {
	return bs.count
}
