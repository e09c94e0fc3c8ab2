package entity

import (
	"context"
	"errors"
	"time"
)

var ErrBatchNotFound = errors.New("batch not found")

const (
	BatchStatusReady = "ready"
	BatchStatusSent  = "sent"
)

// Entidade: Batch (one imported lead file tracked through a send lifecycle)
type Batch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // source filename
	Leads     []Lead    `json:"leads"`
	Status    string    `json:"status"` // ready -> sent, terminal
	CreatedAt time.Time `json:"created_at"`
}

// NewBatch creates a committed batch in the ready state.
func NewBatch(id, name string, leads []Lead, now time.Time) *Batch {
	return &Batch{
		ID:        id,
		Name:      name,
		Leads:     leads,
		Status:    BatchStatusReady,
		CreatedAt: now,
	}
}

func (b *Batch) Sent() bool {
	return b.Status == BatchStatusSent
}

type BatchRepositoryInterface interface {

	// All returns the batch list newest-first.
	All(ctx context.Context) ([]Batch, error)

	// Insert prepends the batch and persists the full list.
	Insert(ctx context.Context, batch *Batch) error

	// UpdateStatus transitions one batch and persists the full list.
	// Returns ErrBatchNotFound when the id is unknown.
	UpdateStatus(ctx context.Context, id, status string) (*Batch, error)

	FindByID(ctx context.Context, id string) (*Batch, error)
}
