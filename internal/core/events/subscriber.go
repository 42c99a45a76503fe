// Package events runs named, independent event subscribers. Each subscriber
// drains its own buffered channel on its own goroutine, so a slow or failing
// subscriber never blocks its siblings.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Handler processes one event. A returned error is logged and counted; it
// does not stop the subscriber.
type Handler[T any] func(ctx context.Context, event T) error

// Result labels passed to an Observer.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultPanic = "panic"
)

// Observer is notified once per handled event.
type Observer func(subscriber, result string)

// Subscriber is a named consumer of events of type T.
type Subscriber[T any] struct {
	name     string
	events   chan T
	handle   Handler[T]
	observer Observer

	stopOnce sync.Once
	done     chan struct{}
}

// NewSubscriber panics on a nil handler; a subscriber without one is a wiring bug.
func NewSubscriber[T any](name string, bufferSize int, handle Handler[T]) *Subscriber[T] {
	if handle == nil {
		panic(fmt.Sprintf("events: subscriber %q has nil handler", name))
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Subscriber[T]{
		name:   name,
		events: make(chan T, bufferSize),
		handle: handle,
		done:   make(chan struct{}),
	}
}

// WithObserver attaches an observer. Must be called before Run.
func (s *Subscriber[T]) WithObserver(o Observer) *Subscriber[T] {
	s.observer = o
	return s
}

func (s *Subscriber[T]) Name() string {
	return s.name
}

// Publish enqueues event, blocking while the buffer is full.
// It returns false once the subscriber has stopped.
func (s *Subscriber[T]) Publish(event T) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.events <- event:
		return true
	case <-s.done:
		slog.Warn("[Events] Dropped event for stopped subscriber", "subscriber", s.name)
		return false
	}
}

// Run handles events until ctx is cancelled.
func (s *Subscriber[T]) Run(ctx context.Context) {
	defer s.stopOnce.Do(func() { close(s.done) })

	slog.Info("[Events] Subscriber started", "subscriber", s.name)
	for {
		select {
		case <-ctx.Done():
			slog.Info("[Events] Subscriber stopped", "subscriber", s.name)
			return
		case event := <-s.events:
			s.dispatch(ctx, event)
		}
	}
}

func (s *Subscriber[T]) dispatch(ctx context.Context, event T) {
	result := ResultOK
	defer func() {
		if r := recover(); r != nil {
			result = ResultPanic
			slog.Error("[Events] Handler panicked",
				"subscriber", s.name,
				"panic", r,
				"stack", string(debug.Stack()))
		}
		if s.observer != nil {
			s.observer(s.name, result)
		}
	}()

	if err := s.handle(ctx, event); err != nil {
		result = ResultError
		slog.Error("[Events] Handler failed", "subscriber", s.name, "error", err)
	}
}
