package entitlement

import (
	"github.com/dmitrymomot/promptkit/pkg/plan"
)

// Resolver derives feature-gating decisions from the plan catalog.
// All queries are pure lookups with no side effects; presentation code
// calls them to decide which controls and templates to render.
type Resolver struct {
	catalog *plan.Catalog
}

// NewResolver creates a Resolver over the given catalog.
// Panics if catalog is nil to fail fast during initialization.
func NewResolver(catalog *plan.Catalog) *Resolver {
	if catalog == nil {
		panic("entitlement: plan catalog is required")
	}
	return &Resolver{catalog: catalog}
}

// requiredAccess maps the tier a template is labeled with to the template
// access level a user needs: anonymous/free -> core, registered -> basic,
// premium -> all.
func requiredAccess(requiredTier plan.Tier) (plan.TemplateAccess, error) {
	switch requiredTier {
	case plan.TierAnonymous, plan.TierFree:
		return plan.TemplateAccessCore, nil
	case plan.TierRegistered:
		return plan.TemplateAccessBasic, nil
	case plan.TierPremium:
		return plan.TemplateAccessAll, nil
	}
	return "", plan.ErrInvalidTier
}

// CanAccessTemplateTier reports whether a user on userTier may use a
// template labeled with requiredTier. A plan granting the "all" level
// always passes.
func (r *Resolver) CanAccessTemplateTier(userTier, requiredTier plan.Tier) (bool, error) {
	cfg, err := r.catalog.GetConfig(userTier)
	if err != nil {
		return false, err
	}

	required, err := requiredAccess(requiredTier)
	if err != nil {
		return false, err
	}

	return cfg.TemplateAccess.AtLeast(required), nil
}

// AdvancedOptions returns the advanced generation options level for the tier.
func (r *Resolver) AdvancedOptions(tier plan.Tier) (plan.AdvancedOptions, error) {
	cfg, err := r.catalog.GetConfig(tier)
	if err != nil {
		return "", err
	}
	return cfg.AdvancedOptions, nil
}

// CacheTier returns the response-cache quality of service for the tier.
func (r *Resolver) CacheTier(tier plan.Tier) (plan.CacheTier, error) {
	cfg, err := r.catalog.GetConfig(tier)
	if err != nil {
		return "", err
	}
	return cfg.CacheTier, nil
}

// HistoryRetentionDays returns how long enhancement history is kept for the tier.
func (r *Resolver) HistoryRetentionDays(tier plan.Tier) (int, error) {
	cfg, err := r.catalog.GetConfig(tier)
	if err != nil {
		return 0, err
	}
	return cfg.HistoryRetentionDays, nil
}
