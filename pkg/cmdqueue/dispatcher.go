package cmdqueue

import (
	"context"
	"sync"
	"time"

	"github.com/devseank/ctrlq/internal/observability"
	"github.com/rs/zerolog/log"
)

// Handler executes a dequeued command. The handler owns the command
// unconditionally; a failed command is never re-queued.
type Handler func(ctx context.Context, cmd Command) error

// Dispatcher is the layered consumer loop built on Dequeue and IsEmpty.
// The core queue is pull-based; the dispatcher adds "wait for the next
// command" by parking on a wake signal fed from the queue's enqueued
// events.
type Dispatcher struct {
	queue    *Queue
	handlers map[string]Handler
	fallback Handler
	wake     chan struct{}
	mu       sync.RWMutex
}

// NewDispatcher creates a dispatcher draining the given queue.
func NewDispatcher(queue *Queue) *Dispatcher {
	d := &Dispatcher{
		queue:    queue,
		handlers: make(map[string]Handler),
		wake:     make(chan struct{}, 1),
	}

	queue.On("enqueued", func(Event) {
		select {
		case d.wake <- struct{}{}:
		default:
		}
	})

	return d
}

// Handle registers a handler for a command kind, replacing any previous
// registration for that kind.
func (d *Dispatcher) Handle(kind string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = handler
}

// HandleFallback registers a handler for kinds with no dedicated handler.
func (d *Dispatcher) HandleFallback(handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fallback = handler
}

// Run drains the queue and executes commands in release order until the
// context is cancelled. It returns the context error on cancellation.
func (d *Dispatcher) Run(ctx context.Context) error {
	log.Info().Msg("Dispatcher started")

	for {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmd, ok := d.queue.Dequeue()
			if !ok {
				break
			}
			d.execute(ctx, cmd)
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("Dispatcher stopped")
			return ctx.Err()
		case <-d.wake:
		}
	}
}

// execute runs a single command through its registered handler.
func (d *Dispatcher) execute(ctx context.Context, cmd Command) {
	d.mu.RLock()
	handler, ok := d.handlers[cmd.Kind]
	if !ok {
		handler = d.fallback
	}
	d.mu.RUnlock()

	if handler == nil {
		log.Warn().
			Str("commandId", cmd.ID.String()).
			Str("kind", cmd.Kind).
			Msg("No handler registered for command kind")
		observability.RecordDispatch(cmd.Kind, 0, false)
		return
	}

	startTime := time.Now()
	err := handler(ctx, cmd)
	duration := time.Since(startTime)

	if err != nil {
		log.Error().
			Str("commandId", cmd.ID.String()).
			Str("kind", cmd.Kind).
			Str("class", string(cmd.Class)).
			Dur("duration", duration).
			Err(err).
			Msg("Command failed")
	} else {
		log.Debug().
			Str("commandId", cmd.ID.String()).
			Str("kind", cmd.Kind).
			Str("class", string(cmd.Class)).
			Dur("duration", duration).
			Msg("Command completed")
	}

	observability.RecordDispatch(cmd.Kind, duration, err == nil)
}
