package ledger

import (
	"fmt"
	"time"
)

// periodLayout is the time.Format layout producing YYYY-MM keys.
const periodLayout = "2006-01"

// PeriodKey identifies one billing period, formatted YYYY-MM.
//
// A period boundary crossing is detected by key inequality, not elapsed
// time: a user inactive for several months rolls over directly to the
// current month's zero count, intervening months are never materialized.
type PeriodKey string

// CurrentPeriod derives the period key from the given wall-clock time
// using the local calendar.
func CurrentPeriod(now time.Time) PeriodKey {
	return PeriodKey(now.Format(periodLayout))
}

// Valid reports whether k parses back as a YYYY-MM key.
func (k PeriodKey) Valid() bool {
	_, err := time.Parse(periodLayout, string(k))
	return err == nil
}

// ParsePeriodKey converts a raw string into a PeriodKey, rejecting
// anything that is not a YYYY-MM calendar month.
func ParsePeriodKey(s string) (PeriodKey, error) {
	k := PeriodKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return k, nil
}
