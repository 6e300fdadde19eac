// Package metrics records repair check metrics with Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"calc_backend/internal/feature/repair/usecase"
)

// Recorder implements usecase.MetricsRecorder using Prometheus.
type Recorder struct {
	checksTotal  *prometheus.CounterVec
	duration     prometheus.Histogram
	seriesLength *prometheus.HistogramVec
}

var _ usecase.MetricsRecorder = (*Recorder)(nil)

// New creates a Recorder whose collectors are registered on reg.
// A nil reg uses the default Prometheus registry.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Recorder{
		checksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "repair_checks_total",
				Help: "Total number of repair checks by outcome",
			},
			[]string{"outcome"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "repair_check_duration_seconds",
				Help:    "Duration of repair checks in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		seriesLength: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "repair_series_length",
				Help:    "Number of rows loaded per series in a repair check",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
			[]string{"series"},
		),
	}
}

// ObserveCheck records one finished check.
func (r *Recorder) ObserveCheck(outcome string, elapsed time.Duration) {
	r.checksTotal.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// ObserveSeriesLength records the row count of a loaded series.
func (r *Recorder) ObserveSeriesLength(series string, n int) {
	r.seriesLength.WithLabelValues(series).Observe(float64(n))
}
