package plan

const (
	// Unlimited indicates a quota with no limit (-1 chosen for SQL compatibility).
	Unlimited int64 = -1
)

// Config describes the entitlements of a single plan tier.
// Config values are static: the catalog never mutates them at runtime,
// only the tier a given user is associated with changes.
type Config struct {
	// Quota is the maximum number of consumption units per billing period,
	// or Unlimited.
	Quota int64 `yaml:"quota"`
	// CacheTier informs the response-cache quality of service.
	CacheTier CacheTier `yaml:"cache_tier"`
	// AdvancedOptions is the level of advanced generation options exposed.
	AdvancedOptions AdvancedOptions `yaml:"advanced_options"`
	// TemplateAccess is the template library tier unlocked.
	TemplateAccess TemplateAccess `yaml:"template_access"`
	// HistoryRetentionDays is how long enhancement history is kept.
	// Zero means no retention.
	HistoryRetentionDays int `yaml:"history_retention_days"`
}

// HasQuotaLimit reports whether the config enforces a finite quota.
func (c Config) HasQuotaLimit() bool {
	return c.Quota != Unlimited
}

// DefaultConfigs returns the product default entitlements for all four tiers.
func DefaultConfigs() map[Tier]Config {
	return map[Tier]Config{
		TierAnonymous: {
			Quota:                3,
			CacheTier:            CacheTierNone,
			AdvancedOptions:      AdvancedOptionsNone,
			TemplateAccess:       TemplateAccessCore,
			HistoryRetentionDays: 0,
		},
		TierFree: {
			Quota:                10,
			CacheTier:            CacheTierNone,
			AdvancedOptions:      AdvancedOptionsLimited,
			TemplateAccess:       TemplateAccessCore,
			HistoryRetentionDays: 7,
		},
		TierRegistered: {
			Quota:                50,
			CacheTier:            CacheTierStandard,
			AdvancedOptions:      AdvancedOptionsLimited,
			TemplateAccess:       TemplateAccessBasic,
			HistoryRetentionDays: 30,
		},
		TierPremium: {
			Quota:                Unlimited,
			CacheTier:            CacheTierPriority,
			AdvancedOptions:      AdvancedOptionsFull,
			TemplateAccess:       TemplateAccessAll,
			HistoryRetentionDays: 365,
		},
	}
}
