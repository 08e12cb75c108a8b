// Package metrics exposes Prometheus instrumentation for watch mode.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "routegen"

// Metrics holds the watch-mode collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	eventsTotal          *prometheus.CounterVec
	regenerationsTotal   *prometheus.CounterVec
	spawnFailuresTotal   prometheus.Counter
	regenerationDuration prometheus.Histogram
}

// New registers the collectors with reg. Registering twice on the same
// registry panics, as with promauto.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "watch",
			Name:      "events_total",
			Help:      "Filesystem events received under the route directory, by kind",
		}, []string{"kind"}),

		regenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "watch",
			Name:      "regenerations_total",
			Help:      "Regeneration processes started, by launcher",
		}, []string{"launcher"}),

		spawnFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "watch",
			Name:      "spawn_failures_total",
			Help:      "Regeneration processes that failed to start or exited non-zero",
		}),

		regenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "watch",
			Name:      "regeneration_duration_seconds",
			Help:      "Wall time of regeneration processes",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// ObserveEvent counts one filesystem event of the given kind.
func (m *Metrics) ObserveEvent(kind string) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(kind).Inc()
}

// ObserveSpawn counts one started regeneration.
func (m *Metrics) ObserveSpawn(launcher string) {
	if m == nil {
		return
	}
	m.regenerationsTotal.WithLabelValues(launcher).Inc()
}

// ObserveExit records a finished regeneration.
func (m *Metrics) ObserveExit(d time.Duration, ok bool) {
	if m == nil {
		return
	}
	m.regenerationDuration.Observe(d.Seconds())
	if !ok {
		m.spawnFailuresTotal.Inc()
	}
}

// ObserveSpawnFailure counts a regeneration that could not be started.
func (m *Metrics) ObserveSpawnFailure() {
	if m == nil {
		return
	}
	m.spawnFailuresTotal.Inc()
}
