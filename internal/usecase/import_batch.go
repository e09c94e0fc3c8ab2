package usecase

import (
	"context"
	"log"

	"github.com/udaanx/coldflow/internal/entity"
)

type ImportBatchUseCase struct {
	Batches entity.BatchRepositoryInterface
	IDs     IDGenerator
	Clock   Clock
}

func NewImportBatchUseCase(
	batches entity.BatchRepositoryInterface,
	ids IDGenerator,
	clock Clock,
) *ImportBatchUseCase {
	return &ImportBatchUseCase{
		Batches: batches,
		IDs:     ids,
		Clock:   clock,
	}
}

// Stage parses the raw file into an import candidate. The persisted
// batch list is untouched until Commit.
func (uc *ImportBatchUseCase) Stage(filename, raw string) StagedBatch {
	parsed := ParseLeads(raw)

	if parsed.Dropped > 0 {
		log.Printf("⚠️ Import %q: %d malformed rows dropped", filename, parsed.Dropped)
	}

	return StagedBatch{
		Name:    filename,
		Leads:   parsed.Leads,
		Dropped: parsed.Dropped,
	}
}

// Commit turns a staged import into a persisted ready batch at the head
// of the list. An empty staged batch is still committed; the dashboard
// shows the zero count rather than second-guessing the operator.
func (uc *ImportBatchUseCase) Commit(ctx context.Context, staged StagedBatch) (*entity.Batch, error) {
	batch := entity.NewBatch(uc.IDs.NewID(), staged.Name, staged.Leads, uc.Clock.Now())

	if err := uc.Batches.Insert(ctx, batch); err != nil {
		return nil, err
	}

	log.Printf("✅ Batch %q committed (%d leads)", batch.Name, len(batch.Leads))
	return batch, nil
}
