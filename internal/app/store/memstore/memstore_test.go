package memstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/memstore"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
)

type rec struct {
	ID   int
	Name string
	Tags []string
}

func newStore() *memstore.Store[int, rec] {
	return memstore.New(func(r rec) int { return r.ID }, []rec{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
		{ID: 3, Name: "c"},
	})
}

func names(t *testing.T, s *memstore.Store[int, rec]) []string {
	t.Helper()
	all, err := s.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	out := make([]string, len(all))
	for i, r := range all {
		out[i] = r.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGetAll_PreservesInsertionOrder(t *testing.T) {
	s := newStore()
	if err := s.Insert(context.Background(), rec{ID: 4, Name: "d"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got := names(t, s)
	want := []string{"a", "b", "c", "d"}
	if !equal(got, want) {
		t.Errorf("GetAll() = %v, want %v", got, want)
	}
}

func TestGetByID(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	r, err := s.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID(2): %v", err)
	}
	if r.Name != "b" {
		t.Errorf("GetByID(2).Name = %q, want %q", r.Name, "b")
	}

	if _, err := s.GetByID(ctx, 99); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID(99) err = %v, want ErrNotFound", err)
	}
}

func TestUpdate_MissingIsNoop(t *testing.T) {
	s := newStore()
	n, err := s.Update(context.Background(), rec{ID: 42, Name: "x"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 0 {
		t.Errorf("Update() touched %d, want 0", n)
	}
	if got := names(t, s); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("records changed: %v", got)
	}
}

func TestDuplicateKeys_UpdateAndDeleteTouchAll(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	_ = s.Insert(ctx, rec{ID: 2, Name: "dup"})

	n, _ := s.Update(ctx, rec{ID: 2, Name: "z"})
	if n != 2 {
		t.Errorf("Update() touched %d, want 2", n)
	}
	if got := names(t, s); !equal(got, []string{"a", "z", "c", "z"}) {
		t.Errorf("after Update = %v", got)
	}

	n, _ = s.Delete(ctx, 2)
	if n != 2 {
		t.Errorf("Delete() removed %d, want 2", n)
	}
	if got := names(t, s); !equal(got, []string{"a", "c"}) {
		t.Errorf("after Delete = %v", got)
	}
	if c, _ := s.Count(ctx); c != 2 {
		t.Errorf("Count() = %d, want 2", c)
	}
}

func TestDuplicateKeys_UpdateFuncKeepsEachRecord(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	_ = s.Insert(ctx, rec{ID: 2, Name: "dup"})

	n, err := s.UpdateFunc(ctx, 2, func(r rec) rec {
		r.Name += "!"
		return r
	})
	if err != nil || n != 2 {
		t.Fatalf("UpdateFunc() = %d, %v; want 2, nil", n, err)
	}
	if got := names(t, s); !equal(got, []string{"a", "b!", "c", "dup!"}) {
		t.Errorf("after UpdateFunc = %v", got)
	}

	if n, _ := s.UpdateFunc(ctx, 9, func(r rec) rec { return r }); n != 0 {
		t.Errorf("UpdateFunc(missing) touched %d, want 0", n)
	}
}

func TestWithClone_ReadsAreIsolated(t *testing.T) {
	s := memstore.New(func(r rec) int { return r.ID }, []rec{{ID: 1, Tags: []string{"x"}}}).
		WithClone(func(r rec) rec {
			r.Tags = append([]string(nil), r.Tags...)
			return r
		})
	ctx := context.Background()

	r, _ := s.GetByID(ctx, 1)
	r.Tags[0] = "mutated"

	again, _ := s.GetByID(ctx, 1)
	if again.Tags[0] != "x" {
		t.Errorf("stored record was mutated through a read copy: %v", again.Tags)
	}
}

func TestCanceledContext(t *testing.T) {
	s := newStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.GetAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("GetAll() err = %v, want context.Canceled", err)
	}
}
