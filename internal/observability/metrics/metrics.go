package metrics

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "loadprofile_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	catalogueMutations *prometheus.CounterVec

	profileComputeTotal   *prometheus.CounterVec
	profileComputeLatency *prometheus.HistogramVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec
)

// Init registers observability metrics and DB-backed gauges.
func Init(db *sql.DB, logger *log.Logger) {
	registerOnce.Do(func() {
		catalogueMutations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "catalogue_mutations_total",
				Help: "Total catalogue mutations by action",
			},
			[]string{"action"},
		)

		profileComputeTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "profile_compute_total",
				Help: "Total load profile computations by result",
			},
			[]string{"result"},
		)
		profileComputeLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "profile_compute_latency_seconds",
				Help:    "Load profile computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			catalogueMutations,
			profileComputeTotal,
			profileComputeLatency,
			exportTotal,
			exportLatency,
		)

		if db != nil {
			registerDBMetrics(db, logger)
		}
	})
}

// IncCatalogueMutation increments the mutation counter for an action.
func IncCatalogueMutation(action string) {
	if action == "" {
		action = "unknown"
	}
	if catalogueMutations != nil {
		catalogueMutations.WithLabelValues(action).Inc()
	}
}

// ObserveProfileCompute records computation latency and result.
func ObserveProfileCompute(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if profileComputeTotal != nil {
		profileComputeTotal.WithLabelValues(result).Inc()
	}
	if profileComputeLatency != nil {
		profileComputeLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveExport records export latency and result.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
