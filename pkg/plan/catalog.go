package plan

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// Source defines how tier configs are loaded into a catalog.
type Source interface {
	Load(ctx context.Context) (map[Tier]Config, error)
}

// Catalog is an immutable lookup table from plan tier to its entitlements.
// The config map is never modified after construction, so a Catalog is safe
// for concurrent use without locking.
type Catalog struct {
	configs map[Tier]Config
}

// NewCatalog loads tier configs from the given source and validates them.
// Every one of the four canonical tiers must be configured.
func NewCatalog(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		panic("plan: Source is required")
	}

	configs, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	if err := validateConfigs(configs); err != nil {
		return nil, err
	}

	return &Catalog{configs: maps.Clone(configs)}, nil
}

// NewDefaultCatalog returns a catalog with the product default entitlements.
func NewDefaultCatalog() *Catalog {
	return &Catalog{configs: DefaultConfigs()}
}

// GetConfig returns the entitlement config for the given tier.
// Fails with ErrInvalidTier for unknown tiers; an unknown tier is a
// programming or data error, never a reason to fall back to a default.
func (c *Catalog) GetConfig(tier Tier) (Config, error) {
	if !tier.Valid() {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}
	return c.configs[tier], nil
}

// validateConfigs checks catalog data for internal consistency.
func validateConfigs(configs map[Tier]Config) error {
	for _, tier := range AllTiers() {
		cfg, exists := configs[tier]
		if !exists {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("tier %s is not configured", tier))
		}
		if cfg.Quota < 0 && cfg.Quota != Unlimited {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("tier %s has negative quota: %d", tier, cfg.Quota))
		}
		if !cfg.CacheTier.Valid() {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("tier %s has unknown cache tier: %q", tier, cfg.CacheTier))
		}
		if !cfg.AdvancedOptions.Valid() {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("tier %s has unknown advanced options level: %q", tier, cfg.AdvancedOptions))
		}
		if !cfg.TemplateAccess.Valid() {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("tier %s has unknown template access level: %q", tier, cfg.TemplateAccess))
		}
		if cfg.HistoryRetentionDays < 0 {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("tier %s has negative history retention: %d", tier, cfg.HistoryRetentionDays))
		}
	}

	for tier := range configs {
		if !tier.Valid() {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("unknown tier in catalog: %q", tier))
		}
	}

	return nil
}

// inMemSource implements Source using a static config map.
type inMemSource struct {
	configs map[Tier]Config
}

// NewInMemSource returns an in-memory Source with a copy of the given configs.
func NewInMemSource(configs map[Tier]Config) Source {
	return &inMemSource{configs: maps.Clone(configs)}
}

// Load returns a copy of the configured tiers.
func (s *inMemSource) Load(ctx context.Context) (map[Tier]Config, error) {
	return maps.Clone(s.configs), nil
}
