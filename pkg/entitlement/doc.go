// Package entitlement turns plan catalog configs into the boolean and
// enum decisions the presentation layer consumes: which template tiers a
// user may access, which advanced options to show, and which cache tier
// applies.
//
// The resolver has no state of its own and performs no I/O; every answer
// is derived from the catalog. Unknown tiers are surfaced as
// plan.ErrInvalidTier rather than silently defaulted.
package entitlement
