// Package screens keeps the per-session state of the screen a user is on.
//
// Each session token has at most one open screen. Opening a screen with a
// different name discards the previous state, the way navigating away in
// the console unmounts a screen and forgets its filters, forms and logs.
package screens

import (
	"sync"
	"time"
)

// Closer is implemented by screen states that hold timers or other
// resources to release when the screen is discarded.
type Closer interface {
	Close()
}

type entry struct {
	name    string
	state   any
	touched time.Time
}

// Registry maps session tokens to their open screen. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry), now: time.Now}
}

// WithClock replaces the registry clock. Used by tests.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	return r
}

// Open returns the state of screen name for token, building it when the
// session is on a different screen or has none. build runs without the
// registry lock held; if a concurrent Open for the same token and name wins
// the race, its state is returned and the one just built is closed.
func Open[S any](r *Registry, token, name string, build func() (S, error)) (S, error) {
	if s, ok := lookup[S](r, token, name); ok {
		return s, nil
	}

	s, err := build()
	if err != nil {
		var zero S
		return zero, err
	}

	r.mu.Lock()
	if e, ok := r.entries[token]; ok && e.name == name {
		if cur, ok := e.state.(S); ok {
			e.touched = r.now()
			r.mu.Unlock()
			closeState(s)
			return cur, nil
		}
	}
	prev, hadPrev := r.entries[token]
	r.entries[token] = &entry{name: name, state: s, touched: r.now()}
	r.mu.Unlock()

	if hadPrev {
		closeState(prev.state)
	}
	return s, nil
}

func lookup[S any](r *Registry, token, name string) (S, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[token]; ok && e.name == name {
		if s, ok := e.state.(S); ok {
			e.touched = r.now()
			return s, true
		}
	}
	var zero S
	return zero, false
}

// Current reports the name of the screen open for token.
func (r *Registry) Current(token string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[token]
	if !ok {
		return "", false
	}
	return e.name, true
}

// Close discards the screen open for token, if any.
func (r *Registry) Close(token string) {
	r.mu.Lock()
	e, ok := r.entries[token]
	delete(r.entries, token)
	r.mu.Unlock()
	if ok {
		closeState(e.state)
	}
}

// Sweep discards screens untouched for longer than idle and returns how
// many were dropped.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	cutoff := r.now().Add(-idle)
	var stale []any
	for token, e := range r.entries {
		if e.touched.Before(cutoff) {
			stale = append(stale, e.state)
			delete(r.entries, token)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		closeState(s)
	}
	return len(stale)
}

// Len returns the number of open screens.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func closeState(s any) {
	if c, ok := s.(Closer); ok {
		c.Close()
	}
}
