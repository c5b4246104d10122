package ratelimit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus collectors for limiter activity.
// All methods are safe to call on a nil receiver, so limiters without an
// attached Metrics skip instrumentation without branching at call sites.
type Metrics struct {
	// Admission checks by model and result (allowed/rejected).
	checks *prometheus.CounterVec

	// Rejections by model and quota dimension.
	limitHits *prometheus.CounterVec

	// Seconds spent sleeping in Wait, by model.
	waitSeconds *prometheus.CounterVec

	// Requests and tokens recorded, by model.
	requests *prometheus.CounterVec
	tokens   *prometheus.CounterVec

	// Window utilization percentage, by model and window.
	utilization *prometheus.GaugeVec
}

// NewMetrics creates collectors registered with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates collectors registered with reg.
// Tests pass a fresh registry to avoid duplicate-registration panics.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		checks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explainer_ratelimit_checks_total",
				Help: "Total number of admission checks performed",
			},
			[]string{"model", "result"},
		),

		limitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explainer_ratelimit_hits_total",
				Help: "Total number of rejected admission attempts",
			},
			[]string{"model", "limit"},
		),

		waitSeconds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explainer_ratelimit_wait_seconds_total",
				Help: "Total time spent sleeping for quota to free up",
			},
			[]string{"model"},
		),

		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explainer_ratelimit_requests_total",
				Help: "Total number of completed calls recorded",
			},
			[]string{"model"},
		),

		tokens: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explainer_ratelimit_tokens_total",
				Help: "Total number of tokens recorded",
			},
			[]string{"model"},
		),

		utilization: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "explainer_ratelimit_window_utilization_percent",
				Help: "Current request-count utilization of a window ceiling",
			},
			[]string{"model", "window"},
		),
	}
}

func (m *Metrics) recordCheck(model string, result CheckResult) {
	if m == nil {
		return
	}
	outcome := "allowed"
	if !result.Allowed {
		outcome = "rejected"
	}
	m.checks.WithLabelValues(model, outcome).Inc()
}

func (m *Metrics) recordHit(model string, limit LimitKind) {
	if m == nil {
		return
	}
	m.limitHits.WithLabelValues(model, string(limit)).Inc()
}

func (m *Metrics) addWait(model string, d time.Duration) {
	if m == nil {
		return
	}
	m.waitSeconds.WithLabelValues(model).Add(d.Seconds())
}

func (m *Metrics) recordUsage(model string, tokensUsed int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(model).Inc()
	m.tokens.WithLabelValues(model).Add(float64(tokensUsed))
}

func (m *Metrics) setUtilization(model string, minutePercent, dayPercent float64) {
	if m == nil {
		return
	}
	m.utilization.WithLabelValues(model, "minute").Set(minutePercent)
	m.utilization.WithLabelValues(model, "day").Set(dayPercent)
}
