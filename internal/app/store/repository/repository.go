// Package repository defines the storage contract shared by every console
// collection. The memory and Mongo backends both satisfy it, so list logic
// never depends on where records live.
package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by GetByID when no record has the key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned by backends that enforce unique keys.
	ErrDuplicateID = errors.New("a record with this id already exists")
)

// Repository stores records of type T keyed by K.
//
// GetAll returns records in source order (insertion order). Update,
// UpdateFunc and Delete on a missing key are not errors; they report how
// many records they touched. UpdateFunc applies fn to each record with the
// key on its own, so records sharing a key keep their own data.
type Repository[K comparable, T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id K) (T, error)
	Insert(ctx context.Context, item T) error
	Update(ctx context.Context, item T) (int64, error)
	UpdateFunc(ctx context.Context, id K, fn func(T) T) (int64, error)
	Delete(ctx context.Context, id K) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// KeyFunc extracts the key of a record.
type KeyFunc[K comparable, T any] func(T) K
