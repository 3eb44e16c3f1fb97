// Tracks the system-wide daily metric series produced by the engine.

package sim

import "time"

// MetricName identifies one daily metric series.
type MetricName string

const (
	MetricFacilityUtilization   MetricName = "facility_utilization"
	MetricHealthcareQuality     MetricName = "healthcare_quality"
	MetricInsuranceCoverage     MetricName = "insurance_coverage"
	MetricDigitalHealthAdoption MetricName = "digital_health_adoption"
)

// MetricNames lists every series in reporting order.
var MetricNames = []MetricName{
	MetricFacilityUtilization,
	MetricHealthcareQuality,
	MetricInsuranceCoverage,
	MetricDigitalHealthAdoption,
}

// MetricPoint is one (simulated date, value) sample.
type MetricPoint struct {
	Date  time.Time
	Value float64
}

// Metrics holds the append-only series, one point per simulated day.
type Metrics struct {
	series map[MetricName][]MetricPoint
}

// NewMetrics creates empty series for every MetricName.
func NewMetrics() *Metrics {
	m := &Metrics{series: make(map[MetricName][]MetricPoint, len(MetricNames))}
	for _, name := range MetricNames {
		m.series[name] = []MetricPoint{}
	}
	return m
}

func (m *Metrics) append(name MetricName, date time.Time, value float64) {
	m.series[name] = append(m.series[name], MetricPoint{Date: date, Value: value})
}

// Series returns a copy of one series.
func (m *Metrics) Series(name MetricName) []MetricPoint {
	out := make([]MetricPoint, len(m.series[name]))
	copy(out, m.series[name])
	return out
}

// Snapshot returns a copy of every series.
func (m *Metrics) Snapshot() map[MetricName][]MetricPoint {
	out := make(map[MetricName][]MetricPoint, len(m.series))
	for name := range m.series {
		out[name] = m.Series(name)
	}
	return out
}

// Values returns only the values of one series, in date order.
func (m *Metrics) Values(name MetricName) []float64 {
	points := m.series[name]
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

// StepObserver is notified once per simulated day with the values that
// were appended for that day.
type StepObserver interface {
	ObserveStep(date time.Time, values map[MetricName]float64)
}
