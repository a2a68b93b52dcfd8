package ledger

import "errors"

// Domain errors for credit ledger operations
var (
	ErrInvalidAmount       = errors.New("ledger.errors.invalid_amount")
	ErrInvalidPeriod       = errors.New("ledger.errors.invalid_period")
	ErrStoreFailure        = errors.New("ledger.errors.store_failure")
	ErrFailedToParseConfig = errors.New("ledger.errors.failed_to_parse_config")
	ErrStoreNotReady       = errors.New("ledger.errors.store_not_ready")
)
