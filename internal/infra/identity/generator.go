package identity

import (
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator is the production identifier source.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// WallClock is the production time source.
type WallClock struct{}

func (WallClock) Now() time.Time {
	return time.Now()
}
