package session

import "errors"

// Domain errors for plan session operations
var (
	ErrSessionNotInContext = errors.New("session.errors.session_not_in_context")
	ErrTierLookupFailed    = errors.New("session.errors.tier_lookup_failed")
	ErrTierUpdateFailed    = errors.New("session.errors.tier_update_failed")
)
