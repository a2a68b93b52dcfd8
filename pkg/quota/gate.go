package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/promptkit/pkg/ledger"
	"github.com/dmitrymomot/promptkit/pkg/plan"
)

// Gate enforces per-tier consumption quotas against the credit ledger.
//
// Quota exhaustion is a routine outcome, so it is communicated as a false
// return value, never as an error. Errors are reserved for structural
// problems: unknown tiers, invalid amounts, store failures.
//
// Within one instance, serialized CanConsume/Consume calls never overspend
// a finite quota. The check-then-debit pair is not transactional across
// instances sharing a store; the quota is soft by design and accepts a
// lost-update race between concurrent writers.
type Gate struct {
	catalog *plan.Catalog
	ledger  *ledger.Ledger
}

// NewGate creates a Gate over the given catalog and ledger.
// Panics if either dependency is nil to fail fast during initialization.
func NewGate(catalog *plan.Catalog, l *ledger.Ledger) *Gate {
	if catalog == nil {
		panic("quota: plan catalog is required")
	}
	if l == nil {
		panic("quota: ledger is required")
	}
	return &Gate{catalog: catalog, ledger: l}
}

// CanConsume reports whether the user may consume amount units under the
// given tier's quota. Read-only with respect to the ledger.
func (g *Gate) CanConsume(ctx context.Context, userID uuid.UUID, tier plan.Tier, amount int64) (bool, error) {
	cfg, err := g.catalog.GetConfig(tier)
	if err != nil {
		return false, err
	}

	if amount < 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	if !cfg.HasQuotaLimit() {
		return true, nil
	}

	rec, err := g.ledger.GetUsage(ctx, userID)
	if err != nil {
		return false, errors.Join(ErrUsageLookup, err)
	}

	return rec.UsedCount+amount <= cfg.Quota, nil
}

// Consume re-checks the quota and debits amount against the ledger.
// Returns false without writing when the quota would be exceeded, so a
// denied call never leaves a partial debit. An amount of zero is a no-op
// that succeeds without touching the ledger. Unlimited tiers always
// succeed and still record the increment for usage history, but the
// counter is never load-bearing for gating.
func (g *Gate) Consume(ctx context.Context, userID uuid.UUID, tier plan.Tier, amount int64) (bool, error) {
	allowed, err := g.CanConsume(ctx, userID, tier, amount)
	if err != nil {
		return false, err
	}
	if !allowed {
		return false, nil
	}

	if amount == 0 {
		return true, nil
	}

	if _, err := g.ledger.IncrementUsage(ctx, userID, amount); err != nil {
		return false, err
	}

	return true, nil
}

// Remaining returns how many units the user may still consume this period:
// quota minus used, never negative, or plan.Unlimited for unlimited tiers.
func (g *Gate) Remaining(ctx context.Context, userID uuid.UUID, tier plan.Tier) (int64, error) {
	cfg, err := g.catalog.GetConfig(tier)
	if err != nil {
		return 0, err
	}

	if !cfg.HasQuotaLimit() {
		return plan.Unlimited, nil
	}

	rec, err := g.ledger.GetUsage(ctx, userID)
	if err != nil {
		return 0, errors.Join(ErrUsageLookup, err)
	}

	return max(cfg.Quota-rec.UsedCount, 0), nil
}
