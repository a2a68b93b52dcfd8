package plan

import "errors"

// Domain errors for plan catalog operations
var (
	ErrInvalidTier          = errors.New("plan.errors.invalid_tier")
	ErrInvalidConfiguration = errors.New("plan.errors.invalid_configuration")
	ErrFailedToLoadCatalog  = errors.New("plan.errors.failed_to_load_catalog")
)
