package cmdqueue

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both strategies implement identical external ordering behavior; for any
// fixed operation sequence they must release commands in the same order.

type queueOp struct {
	enqueue bool
	kind    string
	class   Class
}

func runOps(t *testing.T, q *Queue, ops []queueOp) []string {
	t.Helper()

	var released []string
	for _, op := range ops {
		if op.enqueue {
			_, err := q.Enqueue(op.kind, nil, op.class)
			require.NoError(t, err)
			continue
		}
		if cmd, ok := q.Dequeue(); ok {
			released = append(released, cmd.Kind)
		} else {
			released = append(released, "<empty>")
		}
	}

	// Drain the remainder.
	for {
		cmd, ok := q.Dequeue()
		if !ok {
			break
		}
		released = append(released, cmd.Kind)
	}
	return released
}

func TestStrategyEquivalence_FixedScenarios(t *testing.T) {
	scenarios := map[string][]queueOp{
		"emergency preempts routine": {
			{enqueue: true, kind: "SET_SPEED", class: ClassNormal},
			{enqueue: true, kind: "UPDATE_CONFIG", class: ClassNormal},
			{enqueue: true, kind: "EMERGENCY_SHUTDOWN", class: ClassHigh},
		},
		"high lane FIFO around normal": {
			{enqueue: true, kind: "A", class: ClassHigh},
			{enqueue: true, kind: "B", class: ClassHigh},
			{enqueue: true, kind: "C", class: ClassNormal},
			{enqueue: true, kind: "D", class: ClassHigh},
		},
		"interleaved dequeues": {
			{enqueue: true, kind: "n1", class: ClassNormal},
			{enqueue: false},
			{enqueue: false},
			{enqueue: true, kind: "h1", class: ClassHigh},
			{enqueue: true, kind: "n2", class: ClassNormal},
			{enqueue: false},
			{enqueue: true, kind: "h2", class: ClassHigh},
		},
	}

	for name, ops := range scenarios {
		t.Run(name, func(t *testing.T) {
			bucketOrder := runOps(t, New(WithStrategy(StrategyBucket)), ops)
			heapOrder := runOps(t, New(WithStrategy(StrategyHeap)), ops)
			assert.Equal(t, bucketOrder, heapOrder)
		})
	}
}

func TestStrategyEquivalence_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	classes := ClassSet{"CRITICAL", "HIGH", "NORMAL"}

	for round := 0; round < 20; round++ {
		var ops []queueOp
		for i := 0; i < 120; i++ {
			if rng.Intn(3) == 0 {
				ops = append(ops, queueOp{enqueue: false})
				continue
			}
			ops = append(ops, queueOp{
				enqueue: true,
				kind:    fmt.Sprintf("cmd-%d-%d", round, i),
				class:   classes[rng.Intn(len(classes))],
			})
		}

		bucketOrder := runOps(t, New(WithStrategy(StrategyBucket), WithClasses(classes)), ops)
		heapOrder := runOps(t, New(WithStrategy(StrategyHeap), WithClasses(classes)), ops)
		require.Equal(t, bucketOrder, heapOrder, "round %d", round)
	}
}
