// Package metrics exposes the application's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "econpulse"

// Metrics bundles the application's Prometheus registry and collectors.
type Metrics struct {
	Registry *prometheus.Registry

	IngestRuns     *prometheus.CounterVec
	IngestRecords  prometheus.Gauge
	IngestOutliers prometheus.Gauge
	IngestDuration prometheus.Histogram

	ReportRequests *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
}

// New creates a registry with Go runtime and process collectors plus the
// application's ingest and report collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_runs_total",
			Help:      "Number of dataset ingest runs by outcome.",
		}, []string{"outcome"}),
		IngestRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ingest_records",
			Help:      "Number of indicator records in the current snapshot.",
		}),
		IngestOutliers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ingest_outliers",
			Help:      "Number of outlier-flagged records in the current snapshot.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Duration of dataset ingest runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		ReportRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_requests_total",
			Help:      "Number of report requests by report name.",
		}, []string{"report"}),
		ReportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Duration of report computations by report name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"report"}),
	}

	reg.MustRegister(
		m.IngestRuns,
		m.IngestRecords,
		m.IngestOutliers,
		m.IngestDuration,
		m.ReportRequests,
		m.ReportDuration,
	)

	return m
}

// Handler returns an http.Handler that serves the registry's metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
