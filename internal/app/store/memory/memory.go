// Package memory is the volatile repository backend. Records live in a map
// owned by the store and are lost when the process exits.
package memory

import (
	"context"
	"sync"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
)

// Store keeps one entity type in memory. Safe for concurrent use; the map and
// the id counter change together under mu.
type Store[T any] struct {
	mu     sync.RWMutex
	entity repo.Entity[T]
	nextID int64
	items  map[int64]T
}

// New returns an empty store whose first assigned id is 1.
func New[T any](entity repo.Entity[T]) *Store[T] {
	return &Store[T]{
		entity: entity,
		nextID: 1,
		items:  make(map[int64]T),
	}
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	out := make([]T, 0, len(s.items))
	for _, rec := range s.items {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	s.entity.Sort(out)
	return out, nil
}

func (s *Store[T]) Get(ctx context.Context, id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.items[id]
	if !ok {
		var zero T
		return zero, repo.ErrNotFound
	}
	return rec, nil
}

func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	s.entity.ApplyDefaults(&rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.entity.SetID(&rec, id)
	s.items[id] = rec
	return rec, nil
}

func (s *Store[T]) Update(ctx context.Context, id int64, patch repo.Patch) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[id]
	if !ok {
		var zero T
		return zero, repo.ErrNotFound
	}
	merged, err := repo.Merge(cur, patch)
	if err != nil {
		return cur, err
	}
	s.entity.SetID(&merged, id)
	s.items[id] = merged
	return merged, nil
}

func (s *Store[T]) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// Len reports how many records are stored.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
