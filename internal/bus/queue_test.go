package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryPublishShedsWhenFull(t *testing.T) {
	q := NewQueue[int](2)
	require.NoError(t, q.TryPublish(1))
	require.NoError(t, q.TryPublish(2))
	require.ErrorIs(t, q.TryPublish(3), ErrQueueFull)
}

func TestClosedQueueRejects(t *testing.T) {
	q := NewQueue[int](1)
	q.Close()
	require.ErrorIs(t, q.TryPublish(1), ErrQueueClosed)
}

func TestRunDrainsUntilClose(t *testing.T) {
	q := NewQueue[string](8)
	require.NoError(t, q.TryPublish("a"))
	require.NoError(t, q.TryPublish("b"))
	q.Close()

	var got []string
	q.Run(context.Background(), func(v string) { got = append(got, v) })
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	q := NewQueue[int](1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Run(ctx, func(int) { t.Fatal("should not consume") })
}
