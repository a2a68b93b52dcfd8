// Package plan provides the static plan catalog: the mapping from a
// subscription tier to the entitlements it unlocks (prompt-enhancement quota,
// cache tier, advanced options level, template library access, history
// retention).
//
// The catalog is pure data plus lookup. Configs are validated once at
// construction and never mutated afterwards; only the association between a
// user and a tier changes at runtime, and that lives outside this package.
//
// Key concepts:
//
//   - Tier: one of the four canonical plan tiers (anonymous, free,
//     registered, premium)
//   - Config: the entitlement bundle for one tier
//   - Catalog: validated, immutable tier -> Config lookup
//   - Source: pluggable config loading (in-memory defaults or a YAML file)
//
// Basic usage:
//
//	catalog := plan.NewDefaultCatalog()
//
//	cfg, err := catalog.GetConfig(plan.TierFree)
//	if err != nil {
//	    // unknown tier: programming error, do not default
//	}
//	if cfg.HasQuotaLimit() {
//	    // enforce cfg.Quota
//	}
//
// Loading operator-tuned quotas from a file:
//
//	catalog, err := plan.NewCatalog(ctx, plan.NewFileSource("plans.yaml"))
package plan
