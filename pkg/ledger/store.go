package ledger

import (
	"context"

	"github.com/google/uuid"
)

// Store is the key-value abstraction usage counters persist through.
// Counters are namespaced by user ID and period key so users never
// collide. A missing counter reads as zero; reads never write.
type Store interface {
	// Get returns the counter for (userID, period), or 0 if absent.
	Get(ctx context.Context, userID uuid.UUID, period PeriodKey) (int64, error)

	// Increment atomically adds amount to the counter for (userID, period),
	// creating it if absent, and returns the new value. Atomicity is
	// best-effort for backends without a server-side counter primitive.
	Increment(ctx context.Context, userID uuid.UUID, period PeriodKey, amount int64) (int64, error)

	// Periods lists every period that has a stored counter for userID.
	Periods(ctx context.Context, userID uuid.UUID) ([]PeriodKey, error)

	// Delete removes the counter for (userID, period). Deleting a missing
	// counter is not an error.
	Delete(ctx context.Context, userID uuid.UUID, period PeriodKey) error
}
