package cmdqueue

import (
	"time"

	"github.com/google/uuid"
)

// Class is a discrete priority rank. Higher classes always preempt lower
// ones regardless of arrival time.
type Class string

// Default priority classes for a two-level controller runtime.
const (
	ClassHigh   Class = "HIGH"
	ClassNormal Class = "NORMAL"
)

// ClassSet is an ordered set of priority classes, highest rank first.
type ClassSet []Class

// DefaultClasses returns the standard two-level class set: HIGH preempts
// all NORMAL, NORMAL is FIFO among itself.
func DefaultClasses() ClassSet {
	return ClassSet{ClassHigh, ClassNormal}
}

// rank returns the position of c in the set (0 is highest) and whether c
// is a member.
func (cs ClassSet) rank(c Class) (int, bool) {
	for i, known := range cs {
		if known == c {
			return i, true
		}
	}
	return 0, false
}

// Command is an operational instruction admitted to the queue. Once
// admitted it is immutable; the queue owns it exclusively until Dequeue
// transfers ownership to the consumer.
type Command struct {
	ID         uuid.UUID
	Kind       string
	Payload    []byte
	Class      Class
	Sequence   uint64
	EnqueuedAt time.Time

	// rank is the class position resolved at admission so strategies
	// never consult the class set on the hot path.
	rank int
}

// clone returns a copy of the command with its payload duplicated, for
// introspection APIs that must not leak a mutable reference to queue-owned
// state.
func (c Command) clone() Command {
	if c.Payload != nil {
		payload := make([]byte, len(c.Payload))
		copy(payload, c.Payload)
		c.Payload = payload
	}
	return c
}

// outranks reports whether c must be released before other: a higher
// class wins outright, and within a class the smaller (older) sequence
// wins. The relation is irreflexive and transitive, which the heap
// strategy depends on.
func (c Command) outranks(other Command) bool {
	if c.rank != other.rank {
		return c.rank < other.rank
	}
	return c.Sequence < other.Sequence
}
