// Package tokens provides heuristic token estimation for prompts.
//
// Estimates feed the rate limiter's pre-flight admission check; actual usage
// reported by providers is recorded afterwards. The estimator is character
// based with per-family ratios, floored by a whitespace word count so that
// terse, symbol-heavy code never estimates below its word count. Accuracy is
// heuristic, not billing-grade: the limiter's estimate-then-reconcile design
// tolerates drift.
package tokens
