package cmdqueue

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/devseank/ctrlq/internal/observability"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidPriority is returned by Enqueue when the priority class is not
// part of the queue's configured class set. The queue state is unchanged.
var ErrInvalidPriority = errors.New("invalid priority class")

// EventHandler is a function that handles queue events
type EventHandler func(event Event)

// Event represents a queue event
type Event struct {
	Type      string // "enqueued" or "dequeued"
	CommandID uuid.UUID
	Kind      string
	Class     Class
	QueueSize int
}

// Queue is the priority-ordered command dispatch queue. Producers call
// Enqueue concurrently; consumers drain it with Dequeue. One mutex guards
// both the sequence counter and the strategy storage, so no interleaving
// can tear the storage or skip/duplicate a sequence number.
type Queue struct {
	classes ClassSet
	store   strategy
	counts  []int // resident commands per class rank
	seq     uint64
	mu      sync.Mutex

	// Event handling
	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// Option configures a Queue at construction time.
type Option func(*options)

type options struct {
	classes  ClassSet
	strategy StrategyName
}

// WithClasses replaces the default HIGH/NORMAL class set with an ordered
// list of classes, highest rank first.
func WithClasses(classes ClassSet) Option {
	return func(o *options) {
		o.classes = classes
	}
}

// WithStrategy selects the internal placement algorithm.
func WithStrategy(name StrategyName) Option {
	return func(o *options) {
		o.strategy = name
	}
}

// New creates a queue with the default class set and the bucket strategy.
func New(opts ...Option) *Queue {
	observability.EnsureRegistered()

	o := options{
		classes:  DefaultClasses(),
		strategy: StrategyBucket,
	}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue{
		classes:       o.classes,
		store:         newStrategy(o.strategy, o.classes),
		counts:        make([]int, len(o.classes)),
		eventHandlers: make(map[string][]EventHandler),
	}

	log.Debug().
		Str("strategy", string(o.strategy)).
		Int("classes", len(o.classes)).
		Msg("Command queue initialized")

	return q
}

// Enqueue admits a command: it assigns the next sequence number, places
// the command with the active strategy, and returns the assigned
// identifier. It never blocks waiting for a consumer. An unknown class is
// rejected with ErrInvalidPriority before any state changes.
func (q *Queue) Enqueue(kind string, payload []byte, class Class) (uuid.UUID, error) {
	rank, ok := q.classes.rank(class)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidPriority, class)
	}

	cmd := Command{
		ID:         uuid.New(),
		Kind:       kind,
		Payload:    payload,
		Class:      class,
		EnqueuedAt: time.Now(),
		rank:       rank,
	}
	// The queue owns the command exclusively once admitted; detach the
	// payload from the producer's slice so no retained reference can
	// mutate it.
	cmd = cmd.clone()

	q.mu.Lock()
	q.seq++
	cmd.Sequence = q.seq
	q.store.push(cmd)
	q.counts[rank]++
	queueSize := q.store.size()
	classSize := q.counts[rank]
	q.mu.Unlock()

	log.Debug().
		Str("commandId", cmd.ID.String()).
		Str("kind", kind).
		Str("class", string(class)).
		Uint64("sequence", cmd.Sequence).
		Int("queueSize", queueSize).
		Msg("Command enqueued")

	observability.RecordEnqueue(string(class), classSize)

	q.emit(Event{
		Type:      "enqueued",
		CommandID: cmd.ID,
		Kind:      kind,
		Class:     class,
		QueueSize: queueSize,
	})

	return cmd.ID, nil
}

// Dequeue removes and returns the highest-class, oldest-arrived resident
// command, transferring ownership to the caller. The second return value
// is false when the queue is empty; emptiness is a normal terminal state,
// not an error.
func (q *Queue) Dequeue() (Command, bool) {
	q.mu.Lock()
	cmd, ok := q.store.pop()
	queueSize := q.store.size()
	classSize := 0
	if ok {
		q.counts[cmd.rank]--
		classSize = q.counts[cmd.rank]
	}
	q.mu.Unlock()

	if !ok {
		return Command{}, false
	}

	wait := time.Since(cmd.EnqueuedAt)

	log.Debug().
		Str("commandId", cmd.ID.String()).
		Str("kind", cmd.Kind).
		Str("class", string(cmd.Class)).
		Dur("wait", wait).
		Int("queueSize", queueSize).
		Msg("Command dequeued")

	observability.RecordDequeue(string(cmd.Class), wait, classSize)

	q.emit(Event{
		Type:      "dequeued",
		CommandID: cmd.ID,
		Kind:      cmd.Kind,
		Class:     cmd.Class,
		QueueSize: queueSize,
	})

	return cmd, true
}

// Peek returns a copy of the command Dequeue would return, without
// removing it or advancing any state.
func (q *Queue) Peek() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	cmd, ok := q.store.peek()
	if !ok {
		return Command{}, false
	}
	return cmd.clone(), true
}

// IsEmpty reports whether no command is resident.
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.store.size() == 0
}

// Len returns the resident command count.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.store.size()
}

// Classes returns the configured class set, highest rank first.
func (q *Queue) Classes() ClassSet {
	out := make(ClassSet, len(q.classes))
	copy(out, q.classes)
	return out
}

// On registers an event handler for a specific event type
func (q *Queue) On(eventType string, handler EventHandler) {
	q.eventMu.Lock()
	defer q.eventMu.Unlock()

	q.eventHandlers[eventType] = append(q.eventHandlers[eventType], handler)
}

// Off removes all handlers for the event type
func (q *Queue) Off(eventType string) {
	q.eventMu.Lock()
	defer q.eventMu.Unlock()

	delete(q.eventHandlers, eventType)
}

// emit emits an event synchronously to all registered handlers. It is
// always called outside the queue mutex so handlers may call back into
// the queue.
func (q *Queue) emit(event Event) {
	q.eventMu.RLock()
	handlers := q.eventHandlers[event.Type]
	q.eventMu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
