package ratelimit

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the limiters for all configured metered models, keyed by
// model name. It is constructed once at process start from configuration,
// owned by the orchestrator, and passed by handle to wherever admission is
// needed. There is deliberately no package-level registry: the lifetime and
// ownership of every limiter is explicit.
type Registry struct {
	mu       sync.RWMutex
	limiters map[string]*Limiter
	metrics  *Metrics
}

// NewRegistry builds a registry from per-model quota configurations.
// Construction fails if any model's ceilings are invalid; metrics may be nil
// to disable instrumentation.
func NewRegistry(configs map[string]Config, metrics *Metrics) (*Registry, error) {
	limiters := make(map[string]*Limiter, len(configs))

	for name, config := range configs {
		limiter, err := New(name, config)
		if err != nil {
			return nil, fmt.Errorf("rate limiter for model %q: %w", name, err)
		}
		limiter.metrics = metrics
		limiters[name] = limiter
	}

	return &Registry{
		limiters: limiters,
		metrics:  metrics,
	}, nil
}

// Get returns the limiter for a model name, or false if none is configured.
// Models without a limiter (local models) are not metered.
func (r *Registry) Get(name string) (*Limiter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limiter, ok := r.limiters[name]
	return limiter, ok
}

// Names returns the configured model names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.limiters))
	for name := range r.limiters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshots returns a usage snapshot for every registered limiter, ordered
// by model name.
func (r *Registry) Snapshots() []UsageSnapshot {
	names := r.Names()

	snapshots := make([]UsageSnapshot, 0, len(names))
	for _, name := range names {
		if limiter, ok := r.Get(name); ok {
			snapshots = append(snapshots, limiter.Snapshot())
		}
	}
	return snapshots
}
