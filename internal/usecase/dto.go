package usecase

import "github.com/udaanx/coldflow/internal/entity"

// StagedBatch is an in-memory import candidate. Nothing is persisted
// until the operator commits it.
type StagedBatch struct {
	Name    string        `json:"name"`
	Leads   []entity.Lead `json:"leads"`
	Dropped int           `json:"dropped"` // malformed rows filtered by the parser
}

// ParseResult carries the surviving leads plus how many rows were
// filtered out, so callers can surface the loss instead of guessing.
type ParseResult struct {
	Leads   []entity.Lead
	Dropped int
}
