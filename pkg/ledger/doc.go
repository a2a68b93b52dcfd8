// Package ledger provides durable per-user, per-period usage counters for
// the prompt-enhancement credit system.
//
// Counters are scoped to a billing period identified by a YYYY-MM key
// derived from the wall clock. Rollover is detected by key inequality, so
// a user who skips months lands directly on the current month's zero
// count. The Ledger is the sole authorized mutator of usage records; the
// quota gate and the session façade go through it rather than touching
// the store.
//
// Three Store backends are provided:
//
//   - MemoryStore: in-process map, for tests and single-instance use
//   - RedisStore: atomic INCRBY counters namespaced by user and period
//   - PostgresStore: single-table upsert counters for stricter deployments
//
// Basic usage:
//
//	l := ledger.New(ledger.NewMemoryStore())
//
//	rec, err := l.IncrementUsage(ctx, userID, 1)
//	if err != nil {
//	    // ledger.ErrInvalidAmount or a store failure
//	}
//
//	// Drop counters from previous billing periods.
//	_ = l.PurgeStalePeriods(ctx, userID)
package ledger
