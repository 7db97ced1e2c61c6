package stream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture(t *testing.T) {
	var calls atomic.Int32
	f := NewFuture(func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "done", nil
	})

	for range 3 {
		items, err := ToSlice[string](context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, []string{"done"}, items)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestFuture_Failure(t *testing.T) {
	boom := errors.New("boom")

	f := NewFuture(func(ctx context.Context) (int, error) {
		return 0, boom
	})

	items, err := ToSlice[int](context.Background(), f)
	assert.Same(t, boom, err)
	assert.Empty(t, items)
}

func TestFuture_ObserverLeaves(t *testing.T) {
	release := make(chan struct{})
	f := NewFuture(func(ctx context.Context) (int, error) {
		<-release
		return 7, ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := ToSlice[int](ctx, f)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	items, err := ToSlice[int](context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, items)
}
