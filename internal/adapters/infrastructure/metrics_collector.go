package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "weatherstats"

// PrometheusMetrics implements the MetricsRecorder port
type PrometheusMetrics struct {
	CityIngests        *prometheus.CounterVec
	CityIngestDuration prometheus.Histogram
	IngestRuns         prometheus.Counter
	IngestRunCities    *prometheus.CounterVec
	IngestRunDuration  prometheus.Histogram
	LastIngestFailed   prometheus.Gauge

	// Report metrics, labelled by data type.
	ReportQueries  *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
	ReportCache    *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		CityIngests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ingest_city_total",
			Help:      "Per-city ingestion attempts by outcome.",
		}, []string{"outcome"}),
		CityIngestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "ingest_city_duration_seconds",
			Help:      "Time to fetch and store one city observation.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		IngestRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ingest_runs_total",
			Help:      "Completed ingestion runs.",
		}),
		IngestRunCities: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ingest_run_cities_total",
			Help:      "Cities processed by ingestion runs by result.",
		}, []string{"result"}),
		IngestRunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "ingest_run_duration_seconds",
			Help:      "Duration of a complete ingestion run.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		LastIngestFailed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "ingest_last_run_failed_cities",
			Help:      "Failed cities in the most recent ingestion run.",
		}),
		ReportQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "report_queries_total",
			Help:      "Report queries by kind and outcome.",
		}, []string{"kind", "outcome"}),
		ReportDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "report_query_duration_seconds",
			Help:      "Report query duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		ReportCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "report_cache_total",
			Help:      "Report cache lookups by result.",
		}, []string{"result"}),
	}
}

// NewPrometheusMetricsForTesting registers on a private registry
func NewPrometheusMetricsForTesting() (*PrometheusMetrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewPrometheusMetrics(reg), reg
}

func (m *PrometheusMetrics) RecordCityIngest(outcome string, duration time.Duration) {
	m.CityIngests.WithLabelValues(outcome).Inc()
	m.CityIngestDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordIngestRun(succeeded, failed int, duration time.Duration) {
	m.IngestRuns.Inc()
	m.IngestRunCities.WithLabelValues("succeeded").Add(float64(succeeded))
	m.IngestRunCities.WithLabelValues("failed").Add(float64(failed))
	m.IngestRunDuration.Observe(duration.Seconds())
	m.LastIngestFailed.Set(float64(failed))
}

func (m *PrometheusMetrics) RecordReportQuery(kind string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.ReportQueries.WithLabelValues(kind, outcome).Inc()
	m.ReportDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordReportCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ReportCache.WithLabelValues(result).Inc()
}

// NoopMetrics discards everything; the CLIs use it
type NoopMetrics struct{}

func (NoopMetrics) RecordCityIngest(string, time.Duration) {}
func (NoopMetrics) RecordIngestRun(int, int, time.Duration) {}
func (NoopMetrics) RecordReportQuery(string, time.Duration, error) {}
func (NoopMetrics) RecordReportCache(bool) {}
