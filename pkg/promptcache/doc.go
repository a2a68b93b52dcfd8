// Package promptcache caches enhancement responses per user session,
// sized and aged according to the plan's cache tier: standard tiers get a
// small, short-lived cache, priority tiers a larger, longer-lived one,
// and tiers without the entitlement get a transparent no-op.
//
// The credit engine itself never depends on this package; it only
// consumes the cache tier the entitlement resolver reports.
package promptcache
