package store_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udaanx/coldflow/internal/entity"
	"github.com/udaanx/coldflow/internal/infra/store"
)

type seqIDs struct {
	prefix string
	next   int
}

func (s *seqIDs) NewID() string {
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}

func openStore(t *testing.T, path string) *store.Store {
	t.Helper()
	st, err := store.Open(path)
	assert.NoError(t, err)
	return st
}

func TestColdStartSynthesizesFleet(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, filepath.Join(t.TempDir(), "coldflow.db"))
	defer st.Close()

	repo := store.NewAccountRepository(st, &seqIDs{prefix: "acc"})

	fleet, err := repo.Fleet(ctx)
	assert.NoError(t, err)
	assert.Len(t, fleet, len(entity.SeedFleet))

	seen := map[string]bool{}
	for i, acc := range fleet {
		assert.Equal(t, entity.SeedFleet[i].Email, acc.Email)
		assert.Equal(t, entity.SeedFleet[i].ClientID, acc.ClientID)
		assert.Equal(t, entity.SeedHealth, acc.Health)
		assert.Zero(t, acc.Sent)
		assert.Equal(t, entity.AccountStatusActive, acc.Status)
		assert.NotEmpty(t, acc.ID)
		assert.False(t, seen[acc.ID], "account IDs must be distinct")
		seen[acc.ID] = true
	}
}

func TestFleetSurvivesReopenUnchanged(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "coldflow.db")

	st := openStore(t, path)
	first, err := store.NewAccountRepository(st, &seqIDs{prefix: "acc"}).Fleet(ctx)
	assert.NoError(t, err)
	assert.NoError(t, st.Close())

	// A different generator must not matter: the synthesized roster was
	// persisted before the first Fleet call returned.
	st = openStore(t, path)
	defer st.Close()
	second, err := store.NewAccountRepository(st, &seqIDs{prefix: "other"}).Fleet(ctx)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBatchInsertPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "coldflow.db")

	st := openStore(t, path)
	repo := store.NewBatchRepository(st)

	older := entity.NewBatch("b-1", "old.csv", nil, time.Now())
	newer := entity.NewBatch("b-2", "leads.csv", []entity.Lead{
		{Email: "a@x.com", Name: "Alice"},
		{Email: "b@y.com", Name: "Bob"},
	}, time.Now())

	assert.NoError(t, repo.Insert(ctx, older))
	assert.NoError(t, repo.Insert(ctx, newer))

	batches, err := repo.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, batches, 2)
	assert.Equal(t, "leads.csv", batches[0].Name)
	assert.Equal(t, entity.BatchStatusReady, batches[0].Status)
	assert.Len(t, batches[0].Leads, 2)

	assert.NoError(t, st.Close())

	// Reload without intervening mutation reproduces the identical list
	st = openStore(t, path)
	defer st.Close()
	reloaded, err := store.NewBatchRepository(st).All(ctx)
	assert.NoError(t, err)
	assert.Equal(t, batches, reloaded)
}

func TestBatchUpdateStatus(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, filepath.Join(t.TempDir(), "coldflow.db"))
	defer st.Close()

	repo := store.NewBatchRepository(st)
	assert.NoError(t, repo.Insert(ctx, entity.NewBatch("b-1", "leads.csv", nil, time.Now())))

	updated, err := repo.UpdateStatus(ctx, "b-1", entity.BatchStatusSent)
	assert.NoError(t, err)
	assert.Equal(t, entity.BatchStatusSent, updated.Status)

	found, err := repo.FindByID(ctx, "b-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.BatchStatusSent, found.Status)
}

func TestBatchUpdateStatusUnknownID(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, filepath.Join(t.TempDir(), "coldflow.db"))
	defer st.Close()

	repo := store.NewBatchRepository(st)

	_, err := repo.UpdateStatus(ctx, "ghost", entity.BatchStatusSent)
	assert.ErrorIs(t, err, entity.ErrBatchNotFound)

	_, err = repo.FindByID(ctx, "ghost")
	assert.ErrorIs(t, err, entity.ErrBatchNotFound)
}

func TestActivityLogNewestFirst(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "coldflow.db")

	st := openStore(t, path)
	repo := store.NewActivityRepository(st)

	assert.NoError(t, repo.Insert(ctx, &entity.ActivityEntry{ID: "l-1", Type: "transmission", Message: "first"}))
	assert.NoError(t, repo.Insert(ctx, &entity.ActivityEntry{ID: "l-2", Type: "transmission", Message: "second"}))

	entries, err := repo.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Message)
	assert.Equal(t, "first", entries[1].Message)

	assert.NoError(t, st.Close())

	st = openStore(t, path)
	defer st.Close()
	reloaded, err := store.NewActivityRepository(st).All(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entries, reloaded)
}

func TestColdStartEmptyDomains(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, filepath.Join(t.TempDir(), "coldflow.db"))
	defer st.Close()

	batches, err := store.NewBatchRepository(st).All(ctx)
	assert.NoError(t, err)
	assert.Empty(t, batches)

	entries, err := store.NewActivityRepository(st).All(ctx)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	url, err := store.NewSettingsRepository(st).WebhookURL(ctx)
	assert.NoError(t, err)
	assert.Empty(t, url)
}

func TestWebhookURLSaveAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "coldflow.db")

	st := openStore(t, path)
	repo := store.NewSettingsRepository(st)
	assert.NoError(t, repo.SaveWebhookURL(ctx, "https://n8n.example/webhook/abc"))
	assert.NoError(t, st.Close())

	st = openStore(t, path)
	defer st.Close()
	url, err := store.NewSettingsRepository(st).WebhookURL(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "https://n8n.example/webhook/abc", url)
}
