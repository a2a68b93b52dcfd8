package plan

import "fmt"

// Tier identifies a subscription plan tier.
type Tier string

// The four canonical plan tiers, ordered from least to most privileged.
const (
	TierAnonymous  Tier = "anonymous"
	TierFree       Tier = "free"
	TierRegistered Tier = "registered"
	TierPremium    Tier = "premium"
)

// AllTiers lists every valid tier. A catalog must define a config for each.
func AllTiers() []Tier {
	return []Tier{TierAnonymous, TierFree, TierRegistered, TierPremium}
}

// Valid reports whether t is one of the four canonical tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierAnonymous, TierFree, TierRegistered, TierPremium:
		return true
	}
	return false
}

// ParseTier converts a raw string into a Tier.
// Unknown values are rejected with ErrInvalidTier, never silently defaulted.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
	return t, nil
}

// TemplateAccess is the tier of template library a plan unlocks.
// Levels are totally ordered: core < basic < all. Each level is a
// superset of the previous one.
type TemplateAccess string

const (
	TemplateAccessCore  TemplateAccess = "core"
	TemplateAccessBasic TemplateAccess = "basic"
	TemplateAccessAll   TemplateAccess = "all"
)

func (a TemplateAccess) rank() int {
	switch a {
	case TemplateAccessCore:
		return 1
	case TemplateAccessBasic:
		return 2
	case TemplateAccessAll:
		return 3
	}
	return 0 // unknown levels rank below everything
}

// Valid reports whether a is a known template access level.
func (a TemplateAccess) Valid() bool { return a.rank() > 0 }

// AtLeast reports whether a grants everything other does.
func (a TemplateAccess) AtLeast(other TemplateAccess) bool {
	return a.rank() >= other.rank()
}

// AdvancedOptions is the level of advanced generation options a plan exposes.
// Totally ordered: none < limited < full.
type AdvancedOptions string

const (
	AdvancedOptionsNone    AdvancedOptions = "none"
	AdvancedOptionsLimited AdvancedOptions = "limited"
	AdvancedOptionsFull    AdvancedOptions = "full"
)

func (o AdvancedOptions) rank() int {
	switch o {
	case AdvancedOptionsNone:
		return 1
	case AdvancedOptionsLimited:
		return 2
	case AdvancedOptionsFull:
		return 3
	}
	return 0
}

// Valid reports whether o is a known advanced options level.
func (o AdvancedOptions) Valid() bool { return o.rank() > 0 }

// AtLeast reports whether o grants everything other does.
func (o AdvancedOptions) AtLeast(other AdvancedOptions) bool {
	return o.rank() >= other.rank()
}

// CacheTier is the response-cache quality of service assigned to a plan.
// Totally ordered: none < standard < priority.
type CacheTier string

const (
	CacheTierNone     CacheTier = "none"
	CacheTierStandard CacheTier = "standard"
	CacheTierPriority CacheTier = "priority"
)

func (c CacheTier) rank() int {
	switch c {
	case CacheTierNone:
		return 1
	case CacheTierStandard:
		return 2
	case CacheTierPriority:
		return 3
	}
	return 0
}

// Valid reports whether c is a known cache tier.
func (c CacheTier) Valid() bool { return c.rank() > 0 }

// AtLeast reports whether c is the same or a better quality of service than other.
func (c CacheTier) AtLeast(other CacheTier) bool {
	return c.rank() >= other.rank()
}
