package stream

import (
	"context"
	"sync"
)

// Subject is a hot Observable that multicasts the values passed to Send.
//
// Observers only see values sent after they subscribed. After Finish every
// current and future observer is completed with the same error.
type Subject[T any] struct {
	// emitMu serializes Send and Finish.
	emitMu sync.Mutex

	mu        sync.Mutex
	observers map[uint64]*observer[T]
	nextID    uint64
	finished  bool
	err       error
}

var _ Observable[int] = &Subject[int]{}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{observers: make(map[uint64]*observer[T])}
}

func (s *Subject[T]) Observe(ctx context.Context, next func(T), complete func(error)) {
	s.mu.Lock()
	if s.finished {
		err := s.err
		s.mu.Unlock()
		complete(err)
		return
	}

	id := s.nextID
	s.nextID++
	o := &observer[T]{next: next, complete: complete}
	s.observers[id] = o
	o.stop = context.AfterFunc(ctx, func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
		o.finish(ctx.Err())
	})
	s.mu.Unlock()
}

// Send delivers v to every current observer. It is a no-op after Finish.
func (s *Subject[T]) Send(v T) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	current := s.snapshot()
	s.mu.Unlock()

	for _, o := range current {
		o.emit(v)
	}
}

// Finish completes every observer with err (nil for normal completion).
// Only the first call has an effect.
func (s *Subject[T]) Finish(err error) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	s.err = err
	current := s.snapshot()
	clear(s.observers)
	s.mu.Unlock()

	for _, o := range current {
		o.stop()
		o.finish(err)
	}
}

// Observers returns the number of active subscriptions.
func (s *Subject[T]) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func (s *Subject[T]) snapshot() []*observer[T] {
	out := make([]*observer[T], 0, len(s.observers))
	for _, o := range s.observers {
		out = append(out, o)
	}
	return out
}

type observer[T any] struct {
	mu       sync.Mutex
	next     func(T)
	complete func(error)
	done     bool
	stop     func() bool
}

func (o *observer[T]) emit(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done {
		return
	}
	o.next(v)
}

func (o *observer[T]) finish(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done {
		return
	}
	o.done = true
	o.complete(err)
}
