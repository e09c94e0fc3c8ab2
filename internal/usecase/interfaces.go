package usecase

import (
	"context"
	"time"

	"github.com/udaanx/coldflow/internal/entity"
)

// Dispatcher posts a committed batch to the configured automation
// webhook. Implemented by the n8n integration client.
type Dispatcher interface {
	Dispatch(ctx context.Context, webhookURL string, input DispatchInput) error
}

// IDGenerator replaces the original time-and-randomness identifiers so
// tests can supply deterministic ones.
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type DispatchInput struct {
	BatchName string
	Leads     []entity.Lead
	Accounts  []entity.Account
	SentAt    time.Time
}
