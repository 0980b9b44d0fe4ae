package cmdqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand(kind string, rank int, seq uint64) Command {
	return Command{
		Kind:     kind,
		Sequence: seq,
		rank:     rank,
	}
}

func TestBucketStrategy_EmptyPop(t *testing.T) {
	bs := newBucketStrategy(DefaultClasses())

	_, ok := bs.pop()
	assert.False(t, ok)
	assert.Equal(t, 0, bs.size())
}

func TestBucketStrategy_FIFOWithinClass(t *testing.T) {
	bs := newBucketStrategy(DefaultClasses())

	bs.push(testCommand("A", 1, 1))
	bs.push(testCommand("B", 1, 2))
	bs.push(testCommand("C", 1, 3))

	for _, want := range []string{"A", "B", "C"} {
		cmd, ok := bs.pop()
		require.True(t, ok)
		assert.Equal(t, want, cmd.Kind)
	}
}

func TestBucketStrategy_HighPreemptsNormal(t *testing.T) {
	bs := newBucketStrategy(DefaultClasses())

	bs.push(testCommand("SET_SPEED", 1, 1))
	bs.push(testCommand("UPDATE_CONFIG", 1, 2))
	bs.push(testCommand("EMERGENCY_SHUTDOWN", 0, 3))

	var order []string
	for {
		cmd, ok := bs.pop()
		if !ok {
			break
		}
		order = append(order, cmd.Kind)
	}

	assert.Equal(t, []string{"EMERGENCY_SHUTDOWN", "SET_SPEED", "UPDATE_CONFIG"}, order)
}

func TestBucketStrategy_ThreeClasses(t *testing.T) {
	classes := ClassSet{"CRITICAL", "HIGH", "NORMAL"}
	bs := newBucketStrategy(classes)

	bs.push(testCommand("n1", 2, 1))
	bs.push(testCommand("h1", 1, 2))
	bs.push(testCommand("c1", 0, 3))
	bs.push(testCommand("n2", 2, 4))
	bs.push(testCommand("h2", 1, 5))

	var order []string
	for {
		cmd, ok := bs.pop()
		if !ok {
			break
		}
		order = append(order, cmd.Kind)
	}

	assert.Equal(t, []string{"c1", "h1", "h2", "n1", "n2"}, order)
}

func TestBucketStrategy_PeekDoesNotRemove(t *testing.T) {
	bs := newBucketStrategy(DefaultClasses())

	bs.push(testCommand("A", 0, 1))

	peeked, ok := bs.peek()
	require.True(t, ok)
	assert.Equal(t, "A", peeked.Kind)
	assert.Equal(t, 1, bs.size())

	popped, ok := bs.pop()
	require.True(t, ok)
	assert.Equal(t, peeked.Kind, popped.Kind)
	assert.Equal(t, 0, bs.size())
}

func TestBucketStrategy_RankOutOfRangePanics(t *testing.T) {
	bs := newBucketStrategy(DefaultClasses())

	assert.Panics(t, func() {
		bs.push(testCommand("A", 5, 1))
	})
}
