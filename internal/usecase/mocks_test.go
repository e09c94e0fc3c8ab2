package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/udaanx/coldflow/internal/entity"
	"github.com/udaanx/coldflow/internal/usecase"
)

// MockBatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) All(ctx context.Context) ([]entity.Batch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Batch), args.Error(1)
}

func (m *MockBatchRepository) Insert(ctx context.Context, batch *entity.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id string) (*entity.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Batch), args.Error(1)
}

func (m *MockBatchRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Batch, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Batch), args.Error(1)
}

// MockAccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Fleet(ctx context.Context) ([]entity.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, accounts []entity.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

// MockSettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) WebhookURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) SaveWebhookURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) All(ctx context.Context) ([]entity.ActivityEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActivityEntry), args.Error(1)
}

func (m *MockActivityRepository) Insert(ctx context.Context, entry *entity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockDispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, webhookURL string, input usecase.DispatchInput) error {
	args := m.Called(ctx, webhookURL, input)
	return args.Error(0)
}

// Deterministic identifier and time sources

type sequenceIDs struct {
	prefix string
	next   int
}

func (s *sequenceIDs) NewID() string {
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
