package store

import (
	"context"
	"log"

	"github.com/udaanx/coldflow/internal/entity"
	"github.com/udaanx/coldflow/internal/usecase"
)

type AccountRepository struct {
	Store *Store
	IDs   usecase.IDGenerator
}

func NewAccountRepository(s *Store, ids usecase.IDGenerator) *AccountRepository {
	return &AccountRepository{Store: s, IDs: ids}
}

// Fleet returns the persisted roster. On a cold start the seed fleet is
// synthesized, persisted and only then returned, so a reload right
// after first run sees the exact same accounts.
func (r *AccountRepository) Fleet(ctx context.Context) ([]entity.Account, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	var accounts []entity.Account
	found, err := r.Store.Load(KeyAccounts, &accounts)
	if err != nil {
		return nil, err
	}
	if found {
		return accounts, nil
	}

	accounts = make([]entity.Account, 0, len(entity.SeedFleet))
	for _, seed := range entity.SeedFleet {
		accounts = append(accounts, entity.Account{
			ID:       r.IDs.NewID(),
			Email:    seed.Email,
			ClientID: seed.ClientID,
			Health:   entity.SeedHealth,
			Sent:     0,
			Status:   entity.SeedStatus,
		})
	}

	if err := r.Store.Save(KeyAccounts, accounts); err != nil {
		return nil, err
	}

	log.Printf("✅ Fleet provisioned: %d sender accounts", len(accounts))
	return accounts, nil
}

func (r *AccountRepository) Save(ctx context.Context, accounts []entity.Account) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	return r.Store.Save(KeyAccounts, accounts)
}
