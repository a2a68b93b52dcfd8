// Package quota decides whether a prompt-enhancement consumption is
// allowed under the user's plan tier and performs the actual debit
// against the credit ledger.
//
// The invariant the gate maintains: for any finite-quota tier, the used
// count never exceeds the quota across any serialized sequence of Consume
// calls. Exhaustion is reported as a false return, not an error, so
// callers can route users to an upgrade path instead of a failure screen.
//
// Basic usage:
//
//	gate := quota.NewGate(catalog, creditLedger)
//
//	ok, err := gate.Consume(ctx, userID, plan.TierFree, 1)
//	if err != nil {
//	    // structural error: unknown tier, bad amount, store failure
//	}
//	if !ok {
//	    // quota exhausted: offer an upgrade
//	}
package quota
