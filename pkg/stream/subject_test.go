package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	s := NewSubject[int]()
	s.Send(0) // nobody listening

	results := make(chan []int, 2)
	errs := make(chan error, 2)
	for range 2 {
		var got []int
		s.Observe(context.Background(),
			func(v int) { got = append(got, v) },
			func(err error) {
				errs <- err
				results <- got
			})
	}
	require.Equal(t, 2, s.Observers())

	s.Send(1)
	s.Send(2)
	s.Finish(nil)
	s.Send(3)

	for range 2 {
		require.NoError(t, <-errs)
		assert.Equal(t, []int{1, 2}, <-results)
	}
	assert.Zero(t, s.Observers())
}

func TestSubject_Failure(t *testing.T) {
	boom := errors.New("boom")

	s := NewSubject[string]()
	s.Finish(boom)
	s.Finish(nil)

	_, err := ToSlice[string](context.Background(), s)
	assert.Same(t, boom, err)
}

func TestSubject_Unsubscribe(t *testing.T) {
	s := NewSubject[int]()
	ctx, cancel := context.WithCancel(context.Background())

	errs := make(chan error, 1)
	s.Observe(ctx, func(int) { t.Error("unexpected value") }, func(err error) { errs <- err })
	cancel()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("observer was not completed")
	}

	s.Send(1)
	assert.Zero(t, s.Observers())
}
