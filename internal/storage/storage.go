package storage

import (
	"context"
	"time"

	"github.com/velja/jobboard-api/internal/models"
)

// ListingStore persists the whole listing collection as a single blob under
// a fixed key. Last writer wins; there is no cross-writer coordination.
type ListingStore interface {
	// Load returns the stored collection, or an empty one when nothing has
	// been stored yet or the stored payload is malformed (fail-soft read).
	// Connectivity failures are returned as errors.
	Load(ctx context.Context) (models.Collection, error)

	// Save overwrites the stored blob with the given collection. On failure
	// the previously persisted state is left unchanged.
	Save(ctx context.Context, c models.Collection) error
}

// SessionStore tracks revoked session ids until their tokens would have
// expired anyway.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
