// Package export publishes the daily metric series of a running simulation
// as Prometheus metrics.
package export

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/healthsim/healthsim/sim"
)

const namespace = "healthsim"

// Exporter implements sim.StepObserver. Every observed day overwrites the
// per-metric gauges and advances the day counter. Metrics live in a private
// registry so several exporters can coexist in one process.
type Exporter struct {
	registry *prometheus.Registry
	values   *prometheus.GaugeVec
	days     prometheus.Counter
	date     prometheus.Gauge
}

var _ sim.StepObserver = (*Exporter)(nil)

// NewExporter creates an exporter with its own registry. runLabel is attached
// to every metric as the constant label "run" when non-empty.
func NewExporter(runLabel string) *Exporter {
	var constLabels prometheus.Labels
	if runLabel != "" {
		constLabels = prometheus.Labels{"run": runLabel}
	}
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		values: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "metric",
			Help:        "Latest daily value of a system-wide healthcare metric.",
			ConstLabels: constLabels,
		}, []string{"metric"}),
		days: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "simulated_days_total",
			Help:        "Number of simulated days completed.",
			ConstLabels: constLabels,
		}),
		date: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "simulated_date_seconds",
			Help:        "Unix time of the most recently completed simulated day.",
			ConstLabels: constLabels,
		}),
	}
	e.registry.MustRegister(e.values, e.days, e.date)
	for _, name := range sim.MetricNames {
		e.values.WithLabelValues(string(name)).Set(0)
	}
	return e
}

// ObserveStep records one completed day.
func (e *Exporter) ObserveStep(date time.Time, values map[sim.MetricName]float64) {
	for name, v := range values {
		e.values.WithLabelValues(string(name)).Set(v)
	}
	e.days.Inc()
	e.date.Set(float64(date.Unix()))
}

// Registry exposes the exporter's registry, e.g. for promhttp.HandlerFor.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// WriteTextfile writes the current metrics in the text exposition format,
// suitable for the node_exporter textfile collector.
func (e *Exporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
