package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/promptkit/pkg/entitlement"
	"github.com/dmitrymomot/promptkit/pkg/plan"
)

func newResolver(t *testing.T) *entitlement.Resolver {
	t.Helper()
	return entitlement.NewResolver(plan.NewDefaultCatalog())
}

func TestCanAccessTemplateTier(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t)

	t.Run("exhaustive matrix over default catalog", func(t *testing.T) {
		t.Parallel()

		// Default access levels: anonymous/free -> core, registered -> basic,
		// premium -> all. Templates require: free -> core, registered -> basic,
		// premium -> all.
		cases := []struct {
			userTier     plan.Tier
			requiredTier plan.Tier
			want         bool
		}{
			{plan.TierAnonymous, plan.TierFree, true},
			{plan.TierAnonymous, plan.TierRegistered, false},
			{plan.TierAnonymous, plan.TierPremium, false},

			{plan.TierFree, plan.TierFree, true},
			{plan.TierFree, plan.TierRegistered, false},
			{plan.TierFree, plan.TierPremium, false},

			{plan.TierRegistered, plan.TierFree, true},
			{plan.TierRegistered, plan.TierRegistered, true},
			{plan.TierRegistered, plan.TierPremium, false},

			{plan.TierPremium, plan.TierFree, true},
			{plan.TierPremium, plan.TierRegistered, true},
			{plan.TierPremium, plan.TierPremium, true},
		}

		for _, tc := range cases {
			got, err := resolver.CanAccessTemplateTier(tc.userTier, tc.requiredTier)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "user %s, required %s", tc.userTier, tc.requiredTier)
		}
	})

	t.Run("templates labeled anonymous need only core access", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.CanAccessTemplateTier(plan.TierAnonymous, plan.TierAnonymous)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("unknown user tier is surfaced", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.CanAccessTemplateTier(plan.Tier("enterprise"), plan.TierFree)
		assert.ErrorIs(t, err, plan.ErrInvalidTier)
	})

	t.Run("unknown required tier is surfaced", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.CanAccessTemplateTier(plan.TierPremium, plan.Tier("enterprise"))
		assert.ErrorIs(t, err, plan.ErrInvalidTier)
	})
}

func TestPassthroughs(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t)

	t.Run("advanced options", func(t *testing.T) {
		t.Parallel()

		level, err := resolver.AdvancedOptions(plan.TierAnonymous)
		require.NoError(t, err)
		assert.Equal(t, plan.AdvancedOptionsNone, level)

		level, err = resolver.AdvancedOptions(plan.TierPremium)
		require.NoError(t, err)
		assert.Equal(t, plan.AdvancedOptionsFull, level)
	})

	t.Run("cache tier", func(t *testing.T) {
		t.Parallel()

		tier, err := resolver.CacheTier(plan.TierRegistered)
		require.NoError(t, err)
		assert.Equal(t, plan.CacheTierStandard, tier)

		tier, err = resolver.CacheTier(plan.TierPremium)
		require.NoError(t, err)
		assert.Equal(t, plan.CacheTierPriority, tier)
	})

	t.Run("history retention", func(t *testing.T) {
		t.Parallel()

		days, err := resolver.HistoryRetentionDays(plan.TierAnonymous)
		require.NoError(t, err)
		assert.Zero(t, days)

		days, err = resolver.HistoryRetentionDays(plan.TierPremium)
		require.NoError(t, err)
		assert.Equal(t, 365, days)
	})

	t.Run("unknown tier is surfaced", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.AdvancedOptions(plan.Tier("enterprise"))
		assert.ErrorIs(t, err, plan.ErrInvalidTier)

		_, err = resolver.CacheTier(plan.Tier("enterprise"))
		assert.ErrorIs(t, err, plan.ErrInvalidTier)

		_, err = resolver.HistoryRetentionDays(plan.Tier("enterprise"))
		assert.ErrorIs(t, err, plan.ErrInvalidTier)
	})
}
