// Package explain orchestrates a single code explanation.
//
// The pipeline for each request is:
//
//  1. Render the prompt for the target model family
//  2. Estimate the token cost (prompt plus completion budget)
//  3. Wait for rate-limit admission, giving up past the patience ceiling
//  4. Generate through the configured provider
//  5. Record actual usage (provider-reported when exact, estimated otherwise)
//  6. Strip follow-up questions from the output
//
// Admission failures surface as ErrRateLimited so callers can distinguish
// quota exhaustion from provider errors.
package explain
