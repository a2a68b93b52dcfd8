package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UsageRecord is one user's consumption within one billing period.
// Records are exclusively owned by the Ledger; no other component
// mutates them directly.
type UsageRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	Period    PeriodKey `json:"period"`
	UsedCount int64     `json:"used_count"`
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the wall clock used to derive the current period.
// Intended for tests and period-rollover simulations.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// Ledger persists and retrieves per-user, per-period usage counters and
// owns the period-rollover rule. It is the sole authorized mutator of
// usage records in the store.
type Ledger struct {
	store Store
	now   func() time.Time
}

// New creates a Ledger backed by the given store.
// Panics if store is nil to fail fast during initialization.
func New(store Store, opts ...Option) *Ledger {
	if store == nil {
		panic("ledger: Store is required")
	}

	l := &Ledger{
		store: store,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// CurrentPeriod returns the period key for the ledger's current wall-clock time.
func (l *Ledger) CurrentPeriod() PeriodKey {
	return CurrentPeriod(l.now())
}

// GetUsage returns the usage record for the current period. A user with no
// stored counter gets a zero-valued record; the record is materialized
// lazily and no write occurs on read.
func (l *Ledger) GetUsage(ctx context.Context, userID uuid.UUID) (UsageRecord, error) {
	period := l.CurrentPeriod()

	used, err := l.store.Get(ctx, userID, period)
	if err != nil {
		return UsageRecord{}, errors.Join(ErrStoreFailure, err)
	}

	return UsageRecord{UserID: userID, Period: period, UsedCount: used}, nil
}

// IncrementUsage debits amount against the current period's counter and
// returns the updated record. Amount must be a positive integer; the
// check runs before any store write.
func (l *Ledger) IncrementUsage(ctx context.Context, userID uuid.UUID, amount int64) (UsageRecord, error) {
	if amount <= 0 {
		return UsageRecord{}, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	period := l.CurrentPeriod()

	used, err := l.store.Increment(ctx, userID, period, amount)
	if err != nil {
		return UsageRecord{}, errors.Join(ErrStoreFailure, err)
	}

	return UsageRecord{UserID: userID, Period: period, UsedCount: used}, nil
}

// PurgeStalePeriods deletes every stored counter for userID whose period
// is not the current one. Idempotent and safe to call at any time; a user
// with no stale counters is a no-op.
func (l *Ledger) PurgeStalePeriods(ctx context.Context, userID uuid.UUID) error {
	current := l.CurrentPeriod()

	periods, err := l.store.Periods(ctx, userID)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}

	for _, period := range periods {
		if period == current {
			continue
		}
		if err := l.store.Delete(ctx, userID, period); err != nil {
			return errors.Join(ErrStoreFailure, err)
		}
	}

	return nil
}
