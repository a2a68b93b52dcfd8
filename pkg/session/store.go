package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/promptkit/pkg/plan"
)

// TierStore persists the user→tier association so a plan survives the
// session it was changed in. Usage counters live in the ledger store; this
// holds only the association key.
type TierStore interface {
	// GetTier returns the stored tier for userID, reporting whether an
	// association exists.
	GetTier(ctx context.Context, userID uuid.UUID) (plan.Tier, bool, error)

	// SetTier stores the tier association for userID.
	SetTier(ctx context.Context, userID uuid.UUID, tier plan.Tier) error
}

// MemoryTierStore implements TierStore with an in-process map.
type MemoryTierStore struct {
	mu    sync.RWMutex
	tiers map[uuid.UUID]plan.Tier
}

// NewMemoryTierStore creates an empty in-memory tier store.
func NewMemoryTierStore() *MemoryTierStore {
	return &MemoryTierStore{tiers: make(map[uuid.UUID]plan.Tier)}
}

// GetTier returns the stored tier for userID, if any.
func (m *MemoryTierStore) GetTier(ctx context.Context, userID uuid.UUID) (plan.Tier, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tier, ok := m.tiers[userID]
	return tier, ok, nil
}

// SetTier stores the tier association for userID.
func (m *MemoryTierStore) SetTier(ctx context.Context, userID uuid.UUID, tier plan.Tier) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tiers[userID] = tier
	return nil
}
