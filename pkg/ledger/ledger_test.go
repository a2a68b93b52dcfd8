package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/promptkit/pkg/ledger"
)

// fixedClock returns a clock pinned to the given date.
func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestGetUsage(t *testing.T) {
	t.Parallel()

	t.Run("missing record reads as zero without writing", func(t *testing.T) {
		t.Parallel()

		store := ledger.NewMemoryStore()
		l := ledger.New(store, ledger.WithClock(fixedClock(2024, time.January)))
		userID := uuid.New()

		rec, err := l.GetUsage(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, rec.UserID)
		assert.Equal(t, ledger.PeriodKey("2024-01"), rec.Period)
		assert.Zero(t, rec.UsedCount)

		// Read must not materialize a record.
		periods, err := store.Periods(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, periods)
	})
}

func TestIncrementUsage(t *testing.T) {
	t.Parallel()

	t.Run("accumulates within a period", func(t *testing.T) {
		t.Parallel()

		l := ledger.New(ledger.NewMemoryStore(), ledger.WithClock(fixedClock(2024, time.January)))
		userID := uuid.New()

		rec, err := l.IncrementUsage(context.Background(), userID, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rec.UsedCount)

		rec, err = l.IncrementUsage(context.Background(), userID, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), rec.UsedCount)
	})

	t.Run("rejects non-positive amounts before any write", func(t *testing.T) {
		t.Parallel()

		store := ledger.NewMemoryStore()
		l := ledger.New(store, ledger.WithClock(fixedClock(2024, time.January)))
		userID := uuid.New()

		for _, amount := range []int64{0, -1, -100} {
			_, err := l.IncrementUsage(context.Background(), userID, amount)
			assert.ErrorIs(t, err, ledger.ErrInvalidAmount, "amount %d", amount)
		}

		periods, err := store.Periods(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, periods)
	})

	t.Run("users do not collide", func(t *testing.T) {
		t.Parallel()

		l := ledger.New(ledger.NewMemoryStore(), ledger.WithClock(fixedClock(2024, time.January)))
		alice, bob := uuid.New(), uuid.New()

		_, err := l.IncrementUsage(context.Background(), alice, 5)
		require.NoError(t, err)

		rec, err := l.GetUsage(context.Background(), bob)
		require.NoError(t, err)
		assert.Zero(t, rec.UsedCount)
	})
}

func TestPeriodRollover(t *testing.T) {
	t.Parallel()

	t.Run("usage from a previous month is not visible", func(t *testing.T) {
		t.Parallel()

		store := ledger.NewMemoryStore()
		userID := uuid.New()

		january := ledger.New(store, ledger.WithClock(fixedClock(2024, time.January)))
		_, err := january.IncrementUsage(context.Background(), userID, 7)
		require.NoError(t, err)

		february := ledger.New(store, ledger.WithClock(fixedClock(2024, time.February)))
		rec, err := february.GetUsage(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, ledger.PeriodKey("2024-02"), rec.Period)
		assert.Zero(t, rec.UsedCount)
	})

	t.Run("multi-month gap rolls over directly", func(t *testing.T) {
		t.Parallel()

		store := ledger.NewMemoryStore()
		userID := uuid.New()

		january := ledger.New(store, ledger.WithClock(fixedClock(2024, time.January)))
		_, err := january.IncrementUsage(context.Background(), userID, 2)
		require.NoError(t, err)

		june := ledger.New(store, ledger.WithClock(fixedClock(2024, time.June)))
		rec, err := june.GetUsage(context.Background(), userID)
		require.NoError(t, err)
		assert.Zero(t, rec.UsedCount)

		// Intervening months were never materialized.
		periods, err := store.Periods(context.Background(), userID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []ledger.PeriodKey{"2024-01"}, periods)
	})
}

func TestPurgeStalePeriods(t *testing.T) {
	t.Parallel()

	t.Run("removes every non-current period", func(t *testing.T) {
		t.Parallel()

		store := ledger.NewMemoryStore()
		userID := uuid.New()

		for _, month := range []time.Month{time.January, time.February, time.March} {
			l := ledger.New(store, ledger.WithClock(fixedClock(2024, month)))
			_, err := l.IncrementUsage(context.Background(), userID, 1)
			require.NoError(t, err)
		}

		march := ledger.New(store, ledger.WithClock(fixedClock(2024, time.March)))
		require.NoError(t, march.PurgeStalePeriods(context.Background(), userID))

		periods, err := store.Periods(context.Background(), userID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []ledger.PeriodKey{"2024-03"}, periods)

		rec, err := march.GetUsage(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rec.UsedCount)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		store := ledger.NewMemoryStore()
		userID := uuid.New()

		january := ledger.New(store, ledger.WithClock(fixedClock(2024, time.January)))
		_, err := january.IncrementUsage(context.Background(), userID, 1)
		require.NoError(t, err)

		february := ledger.New(store, ledger.WithClock(fixedClock(2024, time.February)))
		_, err = february.IncrementUsage(context.Background(), userID, 1)
		require.NoError(t, err)

		require.NoError(t, february.PurgeStalePeriods(context.Background(), userID))
		after1, err := store.Periods(context.Background(), userID)
		require.NoError(t, err)

		require.NoError(t, february.PurgeStalePeriods(context.Background(), userID))
		after2, err := store.Periods(context.Background(), userID)
		require.NoError(t, err)

		assert.ElementsMatch(t, after1, after2)
		assert.ElementsMatch(t, []ledger.PeriodKey{"2024-02"}, after2)
	})

	t.Run("no-op for a user with no records", func(t *testing.T) {
		t.Parallel()

		l := ledger.New(ledger.NewMemoryStore())
		assert.NoError(t, l.PurgeStalePeriods(context.Background(), uuid.New()))
	})
}

func TestPeriodKey(t *testing.T) {
	t.Parallel()

	t.Run("derived from calendar month", func(t *testing.T) {
		t.Parallel()

		key := ledger.CurrentPeriod(time.Date(2024, time.November, 30, 23, 59, 0, 0, time.UTC))
		assert.Equal(t, ledger.PeriodKey("2024-11"), key)
	})

	t.Run("parse rejects malformed keys", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "2024", "2024-13", "2024-1", "24-01", "2024-01-05"} {
			_, err := ledger.ParsePeriodKey(raw)
			assert.ErrorIs(t, err, ledger.ErrInvalidPeriod, "value %q", raw)
		}
	})

	t.Run("parse accepts well-formed keys", func(t *testing.T) {
		t.Parallel()

		key, err := ledger.ParsePeriodKey("2024-02")
		require.NoError(t, err)
		assert.Equal(t, ledger.PeriodKey("2024-02"), key)
	})
}
