// Package session provides the consumer-facing façade over the credit and
// entitlement engine. It binds one user to their active plan tier and
// exposes the queries the rest of the application needs: current tier,
// remaining credits, quota debits and entitlement checks.
//
// A Session is created at session start and passed explicitly (or via
// context) to every consumer; there is no ambient singleton. The AI
// enhancement call itself lives outside this package and must only be
// made after TryConsume reports success.
//
// Basic usage:
//
//	catalog := plan.NewDefaultCatalog()
//	creditLedger := ledger.New(ledger.NewMemoryStore())
//	gate := quota.NewGate(catalog, creditLedger)
//	resolver := entitlement.NewResolver(catalog)
//
//	sess, err := session.New(ctx, userID, gate, resolver, creditLedger,
//	    session.WithTier(plan.TierFree),
//	    session.WithTierStore(session.NewMemoryTierStore()),
//	)
//
//	if ok, _ := sess.TryConsume(ctx, 1); !ok {
//	    // quota exhausted: route to the upgrade page
//	}
package session
