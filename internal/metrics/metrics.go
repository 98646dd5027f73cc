// Package metrics exposes Prometheus instrumentation for session operations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "teammaker"

// Metrics owns a private registry so several instances can coexist in tests
type Metrics struct {
	reg *prometheus.Registry

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	conflicts  prometheus.Counter
	sessions   prometheus.Gauge
	purged     prometheus.Counter
	rosterSize prometheus.Histogram
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "operations_total",
			Help:      "Session operations by type and result (applied, noop, error).",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "operation_duration_seconds",
			Help:      "Latency of session operations including storage round trips.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~1s
		}, []string{"op"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "version_conflicts_total",
			Help:      "Optimistic save conflicts that triggered a retry.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Sessions currently held in storage.",
		}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "purged_total",
			Help:      "Idle sessions removed by the sweeper.",
		}),
		rosterSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "balancer",
			Name:      "roster_size",
			Help:      "Number of participants per balance.",
			Buckets:   []float64{2, 5, 10, 15, 20, 30, 50, 100},
		}),
	}

	m.reg.MustRegister(
		m.operations,
		m.duration,
		m.conflicts,
		m.sessions,
		m.purged,
		m.rosterSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOperation records the outcome and latency of one operation
func (m *Metrics) ObserveOperation(op, result string, d time.Duration) {
	m.operations.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

// VersionConflict counts a save retry
func (m *Metrics) VersionConflict() {
	m.conflicts.Inc()
}

// SetSessions sets the active session gauge
func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}

// Purged counts sessions dropped by the sweeper
func (m *Metrics) Purged(n int) {
	m.purged.Add(float64(n))
}

// ObserveRosterSize records the roster length of a balance
func (m *Metrics) ObserveRosterSize(n int) {
	m.rosterSize.Observe(float64(n))
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
