package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the playback controller.
type Metrics struct {
	// Renders by mode: initial, autoplay, interactive
	Renders *prometheus.CounterVec

	// Render latency by mode
	RenderLatency *prometheus.HistogramVec

	// Phase transitions
	Transitions *prometheus.CounterVec

	// Slider selections by outcome: ok, rejected, failed
	Selections *prometheus.CounterVec

	// Current phase as its ordinal
	Phase prometheus.Gauge
}

// New registers the playback metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the playback metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Renders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loanmap_playback_renders_total",
			Help: "Total map renders by playback mode",
		}, []string{"mode"}),

		RenderLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loanmap_playback_render_duration_seconds",
			Help:    "Duration of a single map render by playback mode",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"mode"}),

		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loanmap_playback_transitions_total",
			Help: "Total playback phase transitions",
		}, []string{"from", "to"}),

		Selections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loanmap_playback_selections_total",
			Help: "Total slider selections by outcome",
		}, []string{"outcome"}),

		Phase: f.NewGauge(prometheus.GaugeOpts{
			Name: "loanmap_playback_phase",
			Help: "Current playback phase (0 idle, 1 autoplaying, 2 transitioning, 3 interactive, 4 stopped)",
		}),
	}
}

// ObserveRender records one render.
func (m *Metrics) ObserveRender(mode string, d time.Duration) {
	if m != nil {
		m.Renders.WithLabelValues(mode).Inc()
		m.RenderLatency.WithLabelValues(mode).Observe(d.Seconds())
	}
}

// IncrementTransition records a phase change.
func (m *Metrics) IncrementTransition(from, to string) {
	if m != nil {
		m.Transitions.WithLabelValues(from, to).Inc()
	}
}

// IncrementSelection records a slider selection outcome.
func (m *Metrics) IncrementSelection(outcome string) {
	if m != nil {
		m.Selections.WithLabelValues(outcome).Inc()
	}
}

// SetPhase records the current phase ordinal.
func (m *Metrics) SetPhase(phase int) {
	if m != nil {
		m.Phase.Set(float64(phase))
	}
}
