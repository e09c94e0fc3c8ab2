package store

import (
	"context"

	"github.com/udaanx/coldflow/internal/entity"
)

type BatchRepository struct {
	Store *Store
}

func NewBatchRepository(s *Store) *BatchRepository {
	return &BatchRepository{Store: s}
}

// All returns the batch list newest-first, empty on a cold start.
func (r *BatchRepository) All(ctx context.Context) ([]entity.Batch, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	return r.load()
}

// Insert prepends the batch and persists the full list.
func (r *BatchRepository) Insert(ctx context.Context, batch *entity.Batch) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	batches, err := r.load()
	if err != nil {
		return err
	}

	batches = append([]entity.Batch{*batch}, batches...)
	return r.Store.Save(KeyBatches, batches)
}

func (r *BatchRepository) FindByID(ctx context.Context, id string) (*entity.Batch, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	batches, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range batches {
		if batches[i].ID == id {
			found := batches[i]
			return &found, nil
		}
	}
	return nil, entity.ErrBatchNotFound
}

// UpdateStatus transitions one batch and persists the full list.
func (r *BatchRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Batch, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	batches, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range batches {
		if batches[i].ID != id {
			continue
		}
		batches[i].Status = status
		if err := r.Store.Save(KeyBatches, batches); err != nil {
			return nil, err
		}
		updated := batches[i]
		return &updated, nil
	}

	return nil, entity.ErrBatchNotFound
}

func (r *BatchRepository) load() ([]entity.Batch, error) {
	var batches []entity.Batch
	if _, err := r.Store.Load(KeyBatches, &batches); err != nil {
		return nil, err
	}
	if batches == nil {
		batches = []entity.Batch{}
	}
	return batches, nil
}
