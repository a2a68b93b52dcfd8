package quota

import "errors"

// Domain errors for quota gate operations
var (
	ErrInvalidAmount = errors.New("quota.errors.invalid_amount")
	ErrUsageLookup   = errors.New("quota.errors.usage_lookup_failed")
)
