package store

import (
	"context"

	"github.com/udaanx/coldflow/internal/entity"
)

type ActivityRepository struct {
	Store *Store
}

func NewActivityRepository(s *Store) *ActivityRepository {
	return &ActivityRepository{Store: s}
}

// All returns the log newest-first, empty on a cold start. Entries
// accumulate for the life of the store, there is no eviction.
func (r *ActivityRepository) All(ctx context.Context) ([]entity.ActivityEntry, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	return r.load()
}

// Insert prepends the entry and persists the full log.
func (r *ActivityRepository) Insert(ctx context.Context, entry *entity.ActivityEntry) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	entries = append([]entity.ActivityEntry{*entry}, entries...)
	return r.Store.Save(KeyLogs, entries)
}

func (r *ActivityRepository) load() ([]entity.ActivityEntry, error) {
	var entries []entity.ActivityEntry
	if _, err := r.Store.Load(KeyLogs, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entity.ActivityEntry{}
	}
	return entries, nil
}
