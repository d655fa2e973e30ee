// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for the reactor/interpreter core.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// Counter names recorded by the reactor and interpreter driver.
const (
	MetricDispatchIterations = "dispatch.iterations"
	MetricFDEventsDelivered  = "dispatch.fd_events"
	MetricTimersFired        = "dispatch.timers_fired"
	MetricSignalsDelivered   = "dispatch.signals"
	MetricStepsExecuted      = "interp.steps"
	MetricJobsCreated        = "interp.jobs_created"
	MetricJobsDestroyed      = "interp.jobs_destroyed"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Incr bumps an integer counter by delta, creating it at delta if absent.
func (mr *MetricsRegistry) Incr(key string, delta int64) {
	mr.mu.Lock()
	cur, _ := mr.metrics[key].(int64)
	mr.metrics[key] = cur + delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}
