package ratelimit

import "time"

// LimitKind identifies which quota dimension rejected an admission check.
type LimitKind string

const (
	// LimitNone means no limit was hit.
	LimitNone LimitKind = ""

	// LimitRequestsPerMinute is the per-minute request count quota.
	LimitRequestsPerMinute LimitKind = "requests_per_minute"

	// LimitTokensPerMinute is the per-minute token quota.
	LimitTokensPerMinute LimitKind = "tokens_per_minute"

	// LimitRequestsPerDay is the per-day request count quota.
	LimitRequestsPerDay LimitKind = "requests_per_day"

	// LimitTokensPerDay is the per-day token quota.
	LimitTokensPerDay LimitKind = "tokens_per_day"
)

// Config contains the quota ceilings for a single metered model.
// All four ceilings are required and must be positive; a zero ceiling would
// block every request, which is treated as a configuration error rather
// than a valid setting.
type Config struct {
	// RequestsPerMinute limits how many requests may complete per minute.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// TokensPerMinute limits total tokens (prompt + completion) per minute.
	TokensPerMinute int `yaml:"tokens_per_minute"`

	// RequestsPerDay limits how many requests may complete per day.
	RequestsPerDay int `yaml:"requests_per_day"`

	// TokensPerDay limits total tokens per day.
	TokensPerDay int `yaml:"tokens_per_day"`
}

// Validate checks that all ceilings are positive.
func (c Config) Validate() error {
	switch {
	case c.RequestsPerMinute <= 0:
		return &ConfigError{Field: "requests_per_minute", Value: c.RequestsPerMinute}
	case c.TokensPerMinute <= 0:
		return &ConfigError{Field: "tokens_per_minute", Value: c.TokensPerMinute}
	case c.RequestsPerDay <= 0:
		return &ConfigError{Field: "requests_per_day", Value: c.RequestsPerDay}
	case c.TokensPerDay <= 0:
		return &ConfigError{Field: "tokens_per_day", Value: c.TokensPerDay}
	}
	return nil
}

// CheckResult contains the outcome of a non-blocking admission check.
type CheckResult struct {
	// Allowed indicates whether the prospective call may proceed now.
	Allowed bool

	// Wait is how long until the violated quota frees enough room to retry.
	// Zero when Allowed, or when the rejecting window holds no entries that
	// could expire.
	Wait time.Duration

	// Limit names the quota dimension that rejected the check.
	// LimitNone when Allowed.
	Limit LimitKind
}

// UsageSnapshot is a point-in-time view of a limiter's load and lifetime
// totals, suitable for serialization to a machine-readable status report.
type UsageSnapshot struct {
	// Name is the limiter's model identifier.
	Name string `json:"name"`

	// CurrentMinuteRequests is the number of requests in the last minute.
	CurrentMinuteRequests int `json:"current_minute_requests"`

	// CurrentMinuteTokens is the token sum over the last minute.
	CurrentMinuteTokens int `json:"current_minute_tokens"`

	// CurrentDayRequests is the number of requests in the last day.
	CurrentDayRequests int `json:"current_day_requests"`

	// CurrentDayTokens is the token sum over the last day.
	CurrentDayTokens int `json:"current_day_tokens"`

	// TotalRequests is the lifetime request count.
	TotalRequests int64 `json:"total_requests"`

	// TotalTokens is the lifetime token count.
	TotalTokens int64 `json:"total_tokens"`

	// RateLimitHits is the lifetime number of rejected admission attempts.
	RateLimitHits int64 `json:"rate_limit_hits"`

	// TotalWaitSeconds is the lifetime time spent sleeping in Wait.
	TotalWaitSeconds float64 `json:"total_wait_time"`

	// MinuteLimitPercent is current minute requests over the per-minute
	// request ceiling, as a percentage.
	MinuteLimitPercent float64 `json:"minute_limit_percentage"`

	// DayLimitPercent is current day requests over the per-day request
	// ceiling, as a percentage.
	DayLimitPercent float64 `json:"day_limit_percentage"`

	// Timestamp is when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`
}
