package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "worldcup_dashboard"

// Metrics holds the Prometheus collectors for dataset loading and the dashboard.
type Metrics struct {
	// Source fetch metrics.
	SourceFetchDuration prometheus.Histogram
	SourceFetchErrors   prometheus.Counter

	// Dataset metrics, set once per load.
	MatchRecords      prometheus.Gauge
	SkippedRows       prometheus.Gauge
	CountriesResolved prometheus.Gauge
	CountriesDropped  prometheus.Gauge
	DatasetLoadedAt   prometheus.Gauge

	// Dashboard metrics.
	DashboardRequests *prometheus.CounterVec // labels: view={page,wins,year,choropleth,summary}, outcome={ok,bad_request,not_found}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := NewMetricsForTesting()
	prometheus.MustRegister(
		m.SourceFetchDuration,
		m.SourceFetchErrors,
		m.MatchRecords,
		m.SkippedRows,
		m.CountriesResolved,
		m.CountriesDropped,
		m.DatasetLoadedAt,
		m.DashboardRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SourceFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_fetch_duration_seconds",
			Help:      "Duration of fetching and extracting the finals table.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		SourceFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetch_errors_total",
			Help:      "Failed attempts to fetch or extract the finals table.",
		}),
		MatchRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "match_records",
			Help:      "Number of finals loaded into the dataset.",
		}),
		SkippedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_rows",
			Help:      "Table rows ignored because they had no year.",
		}),
		CountriesResolved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countries_resolved",
			Help:      "Winning countries mapped to an ISO3 code.",
		}),
		CountriesDropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countries_dropped",
			Help:      "Winning countries dropped because no ISO3 code was found.",
		}),
		DatasetLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time the dataset was built.",
		}),
		DashboardRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_requests_total",
			Help:      "Dashboard requests by view and outcome.",
		}, []string{"view", "outcome"}),
	}
}
