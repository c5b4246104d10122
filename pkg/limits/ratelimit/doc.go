// Package ratelimit provides multi-window rate limiting for metered model APIs.
//
// # Overview
//
// Each metered model gets one Limiter that enforces four independent quotas
// over two sliding time windows:
//
//   - Requests per minute
//   - Tokens per minute
//   - Requests per day
//   - Tokens per day
//
// Callers check admission with an estimated token cost before a call, and
// record the actual token cost after it completes. The estimate-then-reconcile
// split is deliberate: checking never mutates the accounting, so callers may
// poll freely, and only completed calls count against the quotas.
//
// # Usage
//
//	limiter, err := ratelimit.New("claude", ratelimit.Config{
//	    RequestsPerMinute: 20,
//	    TokensPerMinute:   100000,
//	    RequestsPerDay:    10000,
//	    TokensPerDay:      1000000,
//	})
//
//	ok, err := limiter.Wait(ctx, estimatedTokens)
//	if !ok {
//	    // Quota exhausted for a long horizon; skip the call.
//	}
//	resp := callModel()
//	limiter.Record(resp.TotalTokens)
//
// # Sliding Windows
//
// Usage is tracked as timestamped event logs, pruned from the front on every
// check and snapshot. An event leaves a window exactly when its age exceeds
// the window duration, so quotas release gradually rather than resetting in
// bulk at a window boundary.
//
// # Thread Safety
//
// All operations on a Limiter are safe for concurrent use. A single mutex
// guards the event logs and lifetime counters; Wait sleeps without holding
// it, so concurrent callers are admitted independently once quota frees up.
// No ordering is guaranteed among blocked waiters: when quota frees, any
// waiter may win the next retry.
package ratelimit
