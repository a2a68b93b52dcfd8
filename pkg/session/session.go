package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/promptkit/pkg/entitlement"
	"github.com/dmitrymomot/promptkit/pkg/ledger"
	"github.com/dmitrymomot/promptkit/pkg/plan"
	"github.com/dmitrymomot/promptkit/pkg/quota"
)

// Session is the single integration point the rest of the application uses
// to query the active user's plan: current tier, remaining credits, quota
// debits and entitlement checks. One Session is created per user session
// and torn down with it; consumers receive it explicitly instead of
// reaching for a shared global.
//
// The tier association is the only mutable state and is guarded for
// concurrent readers. Changing the tier never retroactively alters usage
// already recorded in the ledger.
type Session struct {
	userID    uuid.UUID
	gate      *quota.Gate
	resolver  *entitlement.Resolver
	ledger    *ledger.Ledger
	tierStore TierStore
	log       *slog.Logger

	mu   sync.RWMutex
	tier plan.Tier
}

// Option configures a Session.
type Option func(*Session)

// WithTier sets the initial tier used when no stored association exists.
// Invalid tiers are ignored and the anonymous fallback stays in effect.
func WithTier(tier plan.Tier) Option {
	return func(s *Session) {
		if tier.Valid() {
			s.tier = tier
		}
	}
}

// WithTierStore persists the user→tier association across sessions.
// A stored association takes precedence over WithTier, and SetTier writes
// through to the store.
func WithTierStore(store TierStore) Option {
	return func(s *Session) {
		if store != nil {
			s.tierStore = store
		}
	}
}

// WithLogger attaches a logger for debug-level gate decisions.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Session for the given user. The tier defaults to anonymous
// until an account association is known, either via WithTier or a stored
// association in a configured TierStore.
// Panics if a required dependency is nil to fail fast during initialization.
func New(ctx context.Context, userID uuid.UUID, gate *quota.Gate, resolver *entitlement.Resolver, l *ledger.Ledger, opts ...Option) (*Session, error) {
	if gate == nil {
		panic("session: quota gate is required")
	}
	if resolver == nil {
		panic("session: entitlement resolver is required")
	}
	if l == nil {
		panic("session: ledger is required")
	}

	s := &Session{
		userID:   userID,
		gate:     gate,
		resolver: resolver,
		ledger:   l,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		tier:     plan.TierAnonymous,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.tierStore != nil {
		tier, found, err := s.tierStore.GetTier(ctx, userID)
		if err != nil {
			return nil, errors.Join(ErrTierLookupFailed, err)
		}
		if found && tier.Valid() {
			s.tier = tier
		}
	}

	return s, nil
}

// UserID returns the user this session is bound to.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// CurrentTier returns the tier associated with the active session.
func (s *Session) CurrentTier() plan.Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tier
}

// SetTier updates the active tier association, e.g. after an upgrade.
// Transitions are unconditional: any tier may change to any other tier.
// Usage already recorded this period is left untouched. When a TierStore
// is configured the new association is written through before the
// in-memory state changes.
func (s *Session) SetTier(ctx context.Context, tier plan.Tier) error {
	if _, err := plan.ParseTier(string(tier)); err != nil {
		return err
	}

	if s.tierStore != nil {
		if err := s.tierStore.SetTier(ctx, s.userID, tier); err != nil {
			return errors.Join(ErrTierUpdateFailed, err)
		}
	}

	s.mu.Lock()
	s.tier = tier
	s.mu.Unlock()

	s.log.Debug("plan tier changed", "user_id", s.userID, "tier", tier)
	return nil
}

// RemainingCredits returns how many consumption units are left this
// period: quota minus used, never negative, or plan.Unlimited.
func (s *Session) RemainingCredits(ctx context.Context) (int64, error) {
	return s.gate.Remaining(ctx, s.userID, s.CurrentTier())
}

// TryConsume debits amount against the current tier's quota. A false
// return means the quota is exhausted and the caller should offer an
// upgrade rather than retry.
func (s *Session) TryConsume(ctx context.Context, amount int64) (bool, error) {
	tier := s.CurrentTier()

	ok, err := s.gate.Consume(ctx, s.userID, tier, amount)
	if err != nil {
		return false, err
	}
	if !ok {
		s.log.Debug("consumption denied, quota exhausted",
			"user_id", s.userID, "tier", tier, "amount", amount)
	}
	return ok, nil
}

// CanAccessTemplateTier reports whether the session's tier may use a
// template labeled with requiredTier.
func (s *Session) CanAccessTemplateTier(requiredTier plan.Tier) (bool, error) {
	return s.resolver.CanAccessTemplateTier(s.CurrentTier(), requiredTier)
}

// AdvancedOptions returns the advanced options level for the session's tier.
func (s *Session) AdvancedOptions() (plan.AdvancedOptions, error) {
	return s.resolver.AdvancedOptions(s.CurrentTier())
}

// CacheTier returns the cache tier for the session's tier.
func (s *Session) CacheTier() (plan.CacheTier, error) {
	return s.resolver.CacheTier(s.CurrentTier())
}

// PurgeStaleUsage drops the user's usage counters from previous billing
// periods. Idempotent; typically called once at session start.
func (s *Session) PurgeStaleUsage(ctx context.Context) error {
	return s.ledger.PurgeStalePeriods(ctx, s.userID)
}
