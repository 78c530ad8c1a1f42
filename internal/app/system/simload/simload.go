// Package simload models a screen that fetches its data after a fixed
// delay, with a visible loading state, an error state and a retry.
package simload

import (
	"context"
	"sync"
	"time"
)

// State of a load.
type State string

const (
	Idle    State = "idle"
	Loading State = "loading"
	Ready   State = "ready"
	Failed  State = "failed"
)

// FailureMessage is shown when a load fails.
const FailureMessage = "Failed to load users. Please try again later."

// Loader runs fetch after delay and remembers the outcome.
type Loader[T any] struct {
	mu    sync.Mutex
	delay time.Duration
	fetch func(context.Context) (T, error)

	state State
	data  T
	err   error
	done  chan struct{}
}

// New returns an idle loader.
func New[T any](delay time.Duration, fetch func(context.Context) (T, error)) *Loader[T] {
	return &Loader[T]{delay: delay, fetch: fetch, state: Idle}
}

// Snapshot is the loader's observable state.
type Snapshot[T any] struct {
	State   State  `json:"state"`
	Data    T      `json:"-"`
	Message string `json:"message,omitempty"`
}

// Load waits the delay and fetches, unless a previous load already
// succeeded. Callers arriving while a load is running wait for it instead
// of starting another. The wait honors ctx.
func (l *Loader[T]) Load(ctx context.Context) Snapshot[T] {
	l.mu.Lock()
	if l.state == Ready {
		defer l.mu.Unlock()
		return l.snapshot()
	}
	return l.start(ctx)
}

// Retry runs the load again regardless of the previous outcome, or joins
// the one already running.
func (l *Loader[T]) Retry(ctx context.Context) Snapshot[T] {
	l.mu.Lock()
	return l.start(ctx)
}

// Snapshot returns the current state without loading.
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Err returns the error from the last failed load.
func (l *Loader[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// start runs a load or joins the one in flight. l.mu must be held; start
// releases it.
func (l *Loader[T]) start(ctx context.Context) Snapshot[T] {
	if l.state == Loading {
		done := l.done
		l.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
		}
		return l.Snapshot()
	}
	done := make(chan struct{})
	l.state, l.err, l.done = Loading, nil, done
	l.mu.Unlock()

	data, err := l.wait(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	defer close(done)
	if err != nil {
		var zero T
		l.state, l.data, l.err = Failed, zero, err
	} else {
		l.state, l.data = Ready, data
	}
	return l.snapshot()
}

func (l *Loader[T]) wait(ctx context.Context) (T, error) {
	if l.delay > 0 {
		t := time.NewTimer(l.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-t.C:
		}
	}
	return l.fetch(ctx)
}

func (l *Loader[T]) snapshot() Snapshot[T] {
	s := Snapshot[T]{State: l.state, Data: l.data}
	if l.state == Failed {
		s.Message = FailureMessage
	}
	return s
}
