// Package memstore is the in-memory repository backend. It holds records in
// an ordered slice guarded by a RWMutex, mirroring the console's mock arrays:
// contents reset to their seed values whenever the process restarts.
package memstore

import (
	"context"
	"sync"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
)

// Store is an ordered in-memory collection.
//
// Keys are not enforced unique. Records inserted with a key that already
// exists are kept. Update and Delete apply to every record sharing the key;
// UpdateFunc rewrites each of them from its own current value.
type Store[K comparable, T any] struct {
	mu    sync.RWMutex
	items []T
	key   repository.KeyFunc[K, T]
	clone func(T) T
}

var _ repository.Repository[int, struct{}] = (*Store[int, struct{}])(nil)

// New returns a store holding a copy of seed.
func New[K comparable, T any](key repository.KeyFunc[K, T], seed []T) *Store[K, T] {
	s := &Store[K, T]{key: key}
	s.items = make([]T, len(seed))
	copy(s.items, seed)
	return s
}

// WithClone sets a deep-copy function used on every read and write, for
// record types that contain slices or maps.
func (s *Store[K, T]) WithClone(clone func(T) T) *Store[K, T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clone = clone
	for i := range s.items {
		s.items[i] = clone(s.items[i])
	}
	return s
}

func (s *Store[K, T]) copyOf(v T) T {
	if s.clone != nil {
		return s.clone(v)
	}
	return v
}

func (s *Store[K, T]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	for i, it := range s.items {
		out[i] = s.copyOf(it)
	}
	return out, nil
}

func (s *Store[K, T]) GetByID(ctx context.Context, id K) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if s.key(it) == id {
			return s.copyOf(it), nil
		}
	}
	return zero, repository.ErrNotFound
}

func (s *Store[K, T]) Insert(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, s.copyOf(item))
	return nil
}

func (s *Store[K, T]) Update(ctx context.Context, item T) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.key(item)
	var n int64
	for i := range s.items {
		if s.key(s.items[i]) == id {
			s.items[i] = s.copyOf(item)
			n++
		}
	}
	return n, nil
}

func (s *Store[K, T]) UpdateFunc(ctx context.Context, id K, fn func(T) T) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.items {
		if s.key(s.items[i]) == id {
			s.items[i] = s.copyOf(fn(s.copyOf(s.items[i])))
			n++
		}
	}
	return n, nil
}

func (s *Store[K, T]) Delete(ctx context.Context, id K) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	var n int64
	for _, it := range s.items {
		if s.key(it) == id {
			n++
			continue
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	return n, nil
}

func (s *Store[K, T]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}
