package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store with an in-process map. Suitable for tests
// and single-instance deployments; counters do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	counters map[uuid.UUID]map[PeriodKey]int64
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[uuid.UUID]map[PeriodKey]int64),
	}
}

// Get returns the counter for (userID, period), or 0 if absent.
func (m *MemoryStore) Get(ctx context.Context, userID uuid.UUID, period PeriodKey) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.counters[userID][period], nil
}

// Increment adds amount to the counter, creating it if absent.
func (m *MemoryStore) Increment(ctx context.Context, userID uuid.UUID, period PeriodKey, amount int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	periods, exists := m.counters[userID]
	if !exists {
		periods = make(map[PeriodKey]int64)
		m.counters[userID] = periods
	}

	periods[period] += amount
	return periods[period], nil
}

// Periods lists every period with a stored counter for userID.
func (m *MemoryStore) Periods(ctx context.Context, userID uuid.UUID) ([]PeriodKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	periods := make([]PeriodKey, 0, len(m.counters[userID]))
	for period := range m.counters[userID] {
		periods = append(periods, period)
	}
	return periods, nil
}

// Delete removes the counter for (userID, period).
func (m *MemoryStore) Delete(ctx context.Context, userID uuid.UUID, period PeriodKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.counters[userID], period)
	if len(m.counters[userID]) == 0 {
		delete(m.counters, userID)
	}
	return nil
}
