package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/udaanx/coldflow/internal/entity"
)

// SendBatchUseCase runs the whole transmission flow: precondition
// checks, one webhook dispatch, then the sent transition and the audit
// entry. Every failure leaves the batch ready so the operator can
// simply click send again.
type SendBatchUseCase struct {
	Batches    entity.BatchRepositoryInterface
	Accounts   entity.AccountRepositoryInterface
	Settings   entity.SettingsRepositoryInterface
	Activity   entity.ActivityRepositoryInterface
	Dispatcher Dispatcher
	IDs        IDGenerator
	Clock      Clock
}

func NewSendBatchUseCase(
	batches entity.BatchRepositoryInterface,
	accounts entity.AccountRepositoryInterface,
	settings entity.SettingsRepositoryInterface,
	activity entity.ActivityRepositoryInterface,
	dispatcher Dispatcher,
	ids IDGenerator,
	clock Clock,
) *SendBatchUseCase {
	return &SendBatchUseCase{
		Batches:    batches,
		Accounts:   accounts,
		Settings:   settings,
		Activity:   activity,
		Dispatcher: dispatcher,
		IDs:        ids,
		Clock:      clock,
	}
}

func (uc *SendBatchUseCase) Execute(ctx context.Context, batchID string) (*entity.Batch, error) {
	batch, err := uc.Batches.FindByID(ctx, batchID)
	if err != nil {
		if err == entity.ErrBatchNotFound {
			return nil, NewBatchNotFoundError(batchID)
		}
		return nil, err
	}

	// Sent is terminal. The UI disables the affordance, this guards the API.
	if batch.Sent() {
		return nil, NewAlreadySentError(batch.Name)
	}

	webhookURL, err := uc.Settings.WebhookURL(ctx)
	if err != nil {
		return nil, err
	}
	if webhookURL == "" {
		return nil, NewConfigMissingError()
	}

	fleet, err := uc.Accounts.Fleet(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	input := DispatchInput{
		BatchName: batch.Name,
		Leads:     batch.Leads,
		Accounts:  fleet,
		SentAt:    now,
	}

	if err := uc.Dispatcher.Dispatch(ctx, webhookURL, input); err != nil {
		return nil, err
	}

	sent, err := uc.Batches.UpdateStatus(ctx, batch.ID, entity.BatchStatusSent)
	if err != nil {
		return nil, err
	}

	entry := &entity.ActivityEntry{
		ID:        uc.IDs.NewID(),
		Type:      entity.ActivityTypeTransmission,
		Message:   fmt.Sprintf("Bulk outreach started for %s", batch.Name),
		Timestamp: now.Format("15:04:05"),
	}
	if err := uc.Activity.Insert(ctx, entry); err != nil {
		log.Printf("⚠️ CRITICAL: batch %q sent but activity entry failed: %v", batch.Name, err)
		return sent, nil
	}

	log.Printf("🚀 Outreach triggered for %q via automation gateway", batch.Name)
	return sent, nil
}
