package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	// minuteWindow is the duration of the short quota window.
	minuteWindow = time.Minute

	// dayWindow is the duration of the long quota window.
	dayWindow = 24 * time.Hour

	// maxRecommendedWait is the patience ceiling: Wait gives up instead of
	// sleeping when a single retry recommendation exceeds this.
	maxRecommendedWait = 30 * time.Second
)

// tokenEvent is one recorded call's token cost at a point in time.
type tokenEvent struct {
	at     time.Time
	tokens int
}

// Limiter enforces the four quota dimensions for one metered model.
//
// The event logs are append-only at the back and pruned from the front, so
// each log stays sorted by timestamp without ever being re-sorted.
type Limiter struct {
	// name is the model identifier this limiter meters.
	name string

	// config holds the immutable quota ceilings.
	config Config

	// mu guards the four event logs and the lifetime counters.
	// Every public operation takes it for its whole critical section;
	// Wait sleeps only after releasing it.
	mu sync.Mutex

	// Sliding-window event logs, oldest entry at the front.
	minuteRequests []time.Time
	minuteTokens   []tokenEvent
	dayRequests    []time.Time
	dayTokens      []tokenEvent

	// Lifetime counters, monotonically non-decreasing.
	totalRequests int64
	totalTokens   int64
	totalWait     time.Duration
	rateLimitHits int64

	// metrics receives counter updates when attached via a Registry.
	metrics *Metrics

	// now and sleep are seams for tests; production limiters use the
	// real clock and a context-aware timer sleep.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a limiter for the named model.
// It fails fast if any ceiling is zero or negative.
func New(name string, config Config) (*Limiter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Limiter{
		name:   name,
		config: config,
		now:    time.Now,
		sleep:  sleepContext,
	}, nil
}

// Name returns the model identifier this limiter meters.
func (l *Limiter) Name() string {
	return l.name
}

// Check decides, without blocking, whether a call with the given estimated
// token cost would be admissible right now.
//
// The four gates are evaluated in fixed precedence order: requests/minute,
// tokens/minute, requests/day, tokens/day. The tightest, soonest-resetting
// constraint is reported first so callers get the most actionable wait
// estimate. Token gates admit at the boundary: an estimate that lands the
// window sum exactly on the ceiling passes.
//
// Check prunes expired entries but never appends; only Record does. It
// returns an EstimateError for a non-positive estimate.
func (l *Limiter) Check(tokensEstimate int) (CheckResult, error) {
	if tokensEstimate <= 0 {
		return CheckResult{}, &EstimateError{Estimate: tokensEstimate}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)

	result := l.checkLocked(now, tokensEstimate)
	l.metrics.recordCheck(l.name, result)
	return result, nil
}

// checkLocked evaluates the four gates. Caller must hold mu and have pruned.
func (l *Limiter) checkLocked(now time.Time, tokensEstimate int) CheckResult {
	if len(l.minuteRequests) >= l.config.RequestsPerMinute {
		wait := minuteWindow - now.Sub(l.minuteRequests[0])
		return CheckResult{Wait: clampWait(wait), Limit: LimitRequestsPerMinute}
	}

	if sumTokens(l.minuteTokens)+tokensEstimate > l.config.TokensPerMinute {
		var wait time.Duration
		if len(l.minuteTokens) > 0 {
			wait = minuteWindow - now.Sub(l.minuteTokens[0].at)
		}
		return CheckResult{Wait: clampWait(wait), Limit: LimitTokensPerMinute}
	}

	if len(l.dayRequests) >= l.config.RequestsPerDay {
		wait := dayWindow - now.Sub(l.dayRequests[0])
		return CheckResult{Wait: clampWait(wait), Limit: LimitRequestsPerDay}
	}

	if sumTokens(l.dayTokens)+tokensEstimate > l.config.TokensPerDay {
		var wait time.Duration
		if len(l.dayTokens) > 0 {
			wait = dayWindow - now.Sub(l.dayTokens[0].at)
		}
		return CheckResult{Wait: clampWait(wait), Limit: LimitTokensPerDay}
	}

	return CheckResult{Allowed: true}
}

// Wait blocks until a call with the given estimated token cost is admissible,
// or gives up when a single retry recommendation exceeds the 30-second
// patience ceiling. It returns true when the caller may proceed and false
// when it gave up; giving up is a normal outcome, not an error.
//
// Every rejected attempt increments the limiter's rate-limit hit counter.
// The sleep between attempts happens without the lock held, so other callers
// keep checking and recording while this one waits. Cancelling ctx aborts
// the sleep and returns ctx's error.
func (l *Limiter) Wait(ctx context.Context, tokensEstimate int) (bool, error) {
	for {
		result, err := l.Check(tokensEstimate)
		if err != nil {
			return false, err
		}
		if result.Allowed {
			return true, nil
		}

		l.mu.Lock()
		l.rateLimitHits++
		giveUp := result.Wait > maxRecommendedWait
		// A zero wait on a rejected check means the violated window has no
		// entries left to expire: the estimate alone exceeds the ceiling
		// and no amount of waiting admits it.
		if result.Wait == 0 {
			giveUp = true
		}
		if !giveUp {
			l.totalWait += result.Wait
		}
		l.mu.Unlock()

		l.metrics.recordHit(l.name, result.Limit)

		if giveUp {
			return false, nil
		}

		l.metrics.addWait(l.name, result.Wait)
		if err := l.sleep(ctx, result.Wait); err != nil {
			return false, err
		}
	}
}

// Record accounts for a call that has just completed, using its actual token
// cost. It appends to all four windows and updates the lifetime totals.
// Record never fails and never blocks; a negative count is treated as zero.
func (l *Limiter) Record(tokensUsed int) {
	if tokensUsed < 0 {
		tokensUsed = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.minuteRequests = append(l.minuteRequests, now)
	l.minuteTokens = append(l.minuteTokens, tokenEvent{at: now, tokens: tokensUsed})
	l.dayRequests = append(l.dayRequests, now)
	l.dayTokens = append(l.dayTokens, tokenEvent{at: now, tokens: tokensUsed})

	l.totalRequests++
	l.totalTokens += int64(tokensUsed)

	l.metrics.recordUsage(l.name, tokensUsed)
}

// Snapshot returns a point-in-time view of current window load and lifetime
// totals. It prunes expired entries but appends nothing, so two snapshots
// with no recordings in between report identical counts.
func (l *Limiter) Snapshot() UsageSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)

	snap := UsageSnapshot{
		Name:                  l.name,
		CurrentMinuteRequests: len(l.minuteRequests),
		CurrentMinuteTokens:   sumTokens(l.minuteTokens),
		CurrentDayRequests:    len(l.dayRequests),
		CurrentDayTokens:      sumTokens(l.dayTokens),
		TotalRequests:         l.totalRequests,
		TotalTokens:           l.totalTokens,
		RateLimitHits:         l.rateLimitHits,
		TotalWaitSeconds:      l.totalWait.Seconds(),
		Timestamp:             now,
	}

	if l.config.RequestsPerMinute > 0 {
		snap.MinuteLimitPercent = float64(len(l.minuteRequests)) / float64(l.config.RequestsPerMinute) * 100
	}
	if l.config.RequestsPerDay > 0 {
		snap.DayLimitPercent = float64(len(l.dayRequests)) / float64(l.config.RequestsPerDay) * 100
	}

	l.metrics.setUtilization(l.name, snap.MinuteLimitPercent, snap.DayLimitPercent)

	return snap
}

// pruneLocked drops entries older than their window, front-first.
// The logs are timestamp-sorted, so pruning stops at the first entry still
// inside the window. Caller must hold mu.
func (l *Limiter) pruneLocked(now time.Time) {
	for len(l.minuteRequests) > 0 && now.Sub(l.minuteRequests[0]) > minuteWindow {
		l.minuteRequests = l.minuteRequests[1:]
	}
	for len(l.minuteTokens) > 0 && now.Sub(l.minuteTokens[0].at) > minuteWindow {
		l.minuteTokens = l.minuteTokens[1:]
	}
	for len(l.dayRequests) > 0 && now.Sub(l.dayRequests[0]) > dayWindow {
		l.dayRequests = l.dayRequests[1:]
	}
	for len(l.dayTokens) > 0 && now.Sub(l.dayTokens[0].at) > dayWindow {
		l.dayTokens = l.dayTokens[1:]
	}
}

// sumTokens totals the token counts in an event log.
func sumTokens(events []tokenEvent) int {
	total := 0
	for _, e := range events {
		total += e.tokens
	}
	return total
}

// clampWait floors a wait recommendation at zero.
func clampWait(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// sleepContext sleeps for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
