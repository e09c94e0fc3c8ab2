package entity

import "context"

// Activity types. The send flow only produces transmissions today; the
// remaining tags are reserved for future accounting events.
const (
	ActivityTypeTransmission = "transmission"
	ActivityTypeWarmup       = "warmup"
	ActivityTypeSystem       = "system"
)

// Entidade: ActivityEntry (append-only audit record)
type ActivityEntry struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // display format, e.g. 15:04:05
}

type ActivityRepositoryInterface interface {

	// All returns the log newest-first.
	All(ctx context.Context) ([]ActivityEntry, error)

	// Insert prepends the entry and persists the full log.
	Insert(ctx context.Context, entry *ActivityEntry) error
}
