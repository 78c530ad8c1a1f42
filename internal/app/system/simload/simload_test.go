package simload

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoad_Succeeds(t *testing.T) {
	calls := 0
	l := New(time.Millisecond, func(context.Context) ([]string, error) {
		calls++
		return []string{"Aarav"}, nil
	})
	if got := l.Snapshot().State; got != Idle {
		t.Fatalf("initial state = %q, want idle", got)
	}

	s := l.Load(context.Background())
	if s.State != Ready || len(s.Data) != 1 {
		t.Fatalf("Load() = %+v", s)
	}
	l.Load(context.Background())
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestLoad_FailureThenRetry(t *testing.T) {
	fail := true
	l := New(0, func(context.Context) (int, error) {
		if fail {
			return 0, errors.New("backend down")
		}
		return 42, nil
	})

	s := l.Load(context.Background())
	if s.State != Failed || s.Message != FailureMessage {
		t.Fatalf("Load() = %+v, want failed with message", s)
	}
	if l.Err() == nil {
		t.Error("Err() = nil after failure")
	}

	fail = false
	s = l.Retry(context.Background())
	if s.State != Ready || s.Data != 42 || s.Message != "" {
		t.Errorf("Retry() = %+v", s)
	}
}

func TestLoad_HonorsContext(t *testing.T) {
	l := New(time.Hour, func(context.Context) (int, error) { return 1, nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := l.Load(ctx)
	if s.State != Failed || !errors.Is(l.Err(), context.Canceled) {
		t.Errorf("Load(canceled) = %+v err %v", s, l.Err())
	}
}

func TestLoad_ConcurrentCallersShareOneRun(t *testing.T) {
	var calls atomic.Int32
	l := New(20*time.Millisecond, func(context.Context) (int, error) {
		calls.Add(1)
		return 5, nil
	})

	var wg sync.WaitGroup
	states := make([]State, 8)
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i] = l.Load(context.Background()).State
		}(i)
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("fetch called %d times, want 1", n)
	}
	for i, s := range states {
		if s != Ready {
			t.Errorf("caller %d state = %q, want ready", i, s)
		}
	}
}
