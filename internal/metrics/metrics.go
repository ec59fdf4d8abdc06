package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "planebooking"

var (
	// Registry holds every metric exported on /metrics.
	Registry = prometheus.NewRegistry()

	engineInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "invocations_total",
			Help:      "Count of search engine invocations by outcome.",
		},
		[]string{"outcome"},
	)
	engineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "duration_seconds",
			Help:      "Wall time of search engine invocations.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"outcome"},
	)
	resultLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "results",
			Name:      "loads_total",
			Help:      "Count of result file reads by status.",
		},
		[]string{"status"},
	)
	validationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "validation_failures_total",
			Help:      "Count of search requests rejected for missing fields.",
		},
	)
)

var registerMetrics sync.Once

// Register all metrics.
func Register() {
	registerMetrics.Do(func() {
		Registry.MustRegister(engineInvocations)
		Registry.MustRegister(engineDuration)
		Registry.MustRegister(resultLoads)
		Registry.MustRegister(validationFailures)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordEngineInvocation records the outcome and latency of one engine run.
func RecordEngineInvocation(outcome string, d time.Duration) {
	engineInvocations.WithLabelValues(outcome).Inc()
	engineDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// RecordResultLoad records one read of a result file.
func RecordResultLoad(status string) {
	resultLoads.WithLabelValues(status).Inc()
}

// RecordValidationFailure records a request rejected before the engine ran.
func RecordValidationFailure() {
	validationFailures.Inc()
}
