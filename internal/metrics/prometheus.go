package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/agbru/giftcalc/internal/errors"
)

// Recorder collects the figures of one giftcalc run in a private Prometheus
// registry, suitable for the node_exporter textfile collector.
type Recorder struct {
	registry *prometheus.Registry
	duration *prometheus.GaugeVec
	total    *prometheus.GaugeVec
	loaded   prometheus.Gauge
	included prometheus.Gauge
}

// NewRecorder creates a Recorder with its metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "giftcalc",
			Name:      "strategy_duration_seconds",
			Help:      "Wall-clock time of the fastest run of each summation strategy.",
		}, []string{"strategy"}),
		total: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "giftcalc",
			Name:      "strategy_total",
			Help:      "Tax-inclusive total computed by each summation strategy.",
		}, []string{"strategy"}),
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "giftcalc",
			Name:      "costs_loaded",
			Help:      "Number of costs read from the input file.",
		}),
		included: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "giftcalc",
			Name:      "costs_included",
			Help:      "Number of costs below the threshold.",
		}),
	}
	r.registry.MustRegister(r.duration, r.total, r.loaded, r.included)
	return r
}

// ObserveLoad records the size of the loaded collection.
func (r *Recorder) ObserveLoad(count, included int) {
	r.loaded.Set(float64(count))
	r.included.Set(float64(included))
}

// ObserveStrategy records the duration and total of one strategy.
func (r *Recorder) ObserveStrategy(name string, d time.Duration, total float64) {
	r.duration.WithLabelValues(name).Set(d.Seconds())
	r.total.WithLabelValues(name).Set(total)
}

// Gatherer exposes the registry, e.g. for an HTTP handler or tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in the Prometheus text format. The file
// is written to a temporary name and renamed, so readers never see a
// partial export.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return apperrors.WrapError(err, "writing metrics to %s", path)
	}
	return nil
}
