package repository

import (
	"context"
	"time"
)

// Cache abstracts ephemeral key-value state, currently catalog metadata
// looked up for match display. Implementations: Redis (production) or
// in-memory (local dev / single instance). Lobby state never goes through
// here; polling reads must see the latest committed rows.
type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
}
