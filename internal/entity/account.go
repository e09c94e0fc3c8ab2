package entity

import "context"

const (
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
)

// Entidade: Account (one sender identity of the fleet)
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	ClientID string `json:"client_id"`
	Health   int    `json:"health"` // 0-100
	Sent     int    `json:"sent"`
	Status   string `json:"status"` // active, inactive
}

type AccountRepositoryInterface interface {

	// Fleet returns the full roster, synthesizing and persisting the
	// seed fleet on a cold start so subsequent loads are idempotent.
	Fleet(ctx context.Context) ([]Account, error)

	Save(ctx context.Context, accounts []Account) error
}
