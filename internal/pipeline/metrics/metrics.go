package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the load and aggregation pipeline.
type Metrics struct {
	// Load latency by source: records, geometry
	LoadLatency *prometheus.HistogramVec

	// Load failures by source
	LoadFailures *prometheus.CounterVec

	// Records kept and skipped by the reader
	Records *prometheus.CounterVec

	// Aggregate groups by kind: data, no_data
	Groups *prometheus.GaugeVec

	// Full build latency
	BuildLatency prometheus.Histogram
}

// New registers the pipeline metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the pipeline metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LoadLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loanmap_pipeline_load_duration_seconds",
			Help:    "Duration of input loads by source",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),

		LoadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loanmap_pipeline_load_failures_total",
			Help: "Total input load failures by source",
		}, []string{"source"}),

		Records: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loanmap_pipeline_records_total",
			Help: "Loan records read by outcome",
		}, []string{"outcome"}), // outcome: "kept", "skipped"

		Groups: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "loanmap_pipeline_aggregate_groups",
			Help: "Year and region groups in the current aggregate by kind",
		}, []string{"kind"}),

		BuildLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanmap_pipeline_build_duration_seconds",
			Help:    "Duration of a full pipeline build including loads",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// ObserveLoad records one source load.
func (m *Metrics) ObserveLoad(source string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.LoadLatency.WithLabelValues(source).Observe(d.Seconds())
	if err != nil {
		m.LoadFailures.WithLabelValues(source).Inc()
	}
}

// AddRecords records reader outcomes.
func (m *Metrics) AddRecords(kept, skipped int) {
	if m != nil {
		m.Records.WithLabelValues("kept").Add(float64(kept))
		m.Records.WithLabelValues("skipped").Add(float64(skipped))
	}
}

// SetGroups records aggregate group counts.
func (m *Metrics) SetGroups(withData, noData int) {
	if m != nil {
		m.Groups.WithLabelValues("data").Set(float64(withData))
		m.Groups.WithLabelValues("no_data").Set(float64(noData))
	}
}

// ObserveBuild records the total build duration.
func (m *Metrics) ObserveBuild(d time.Duration) {
	if m != nil {
		m.BuildLatency.Observe(d.Seconds())
	}
}
