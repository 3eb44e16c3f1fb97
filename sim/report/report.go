// Package report turns daily metric series into descriptive statistics and
// operational recommendations.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/healthsim/healthsim/sim"
)

// Trend is the direction of a series from its first to its last point.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendFlat       Trend = "flat"
)

// Recommendation thresholds.
const (
	HighUtilizationMean  = 0.8
	UtilizationSpreadMax = 0.2
	LowQualityMean       = 0.7
	QualitySpreadMax     = 0.15
)

// SeriesSummary captures the statistical summary of one metric series.
type SeriesSummary struct {
	Count int
	Mean  float64
	Std   float64 // sample standard deviation; 0 with fewer than two points
	Min   float64
	Max   float64
	Trend Trend
}

// Summarize computes a SeriesSummary from raw values.
// Returns zero-value SeriesSummary (with TrendFlat) for empty input.
func Summarize(values []float64) SeriesSummary {
	if len(values) == 0 {
		return SeriesSummary{Trend: TrendFlat}
	}
	s := SeriesSummary{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Trend: trendOf(values),
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}

func trendOf(values []float64) Trend {
	first, last := values[0], values[len(values)-1]
	switch {
	case last > first:
		return TrendIncreasing
	case last < first:
		return TrendDecreasing
	default:
		return TrendFlat
	}
}

// Report is the end-of-run analysis of a simulation.
type Report struct {
	Start  time.Time
	End    time.Time
	Days   int
	Series map[sim.MetricName]SeriesSummary
}

// Build summarizes every series in metrics. The simulated period is taken
// from the utilization series.
func Build(metrics map[sim.MetricName][]sim.MetricPoint) Report {
	r := Report{Series: make(map[sim.MetricName]SeriesSummary, len(sim.MetricNames))}
	for _, name := range sim.MetricNames {
		points := metrics[name]
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		r.Series[name] = Summarize(values)
	}
	if points := metrics[sim.MetricFacilityUtilization]; len(points) > 0 {
		r.Start = points[0].Date
		r.End = points[len(points)-1].Date
		r.Days = len(points)
	}
	return r
}

// Recommendations derives the operational advice from utilization and
// quality statistics, grouped by heading in display order.
func (r Report) Recommendations() []RecommendationGroup {
	util := r.Series[sim.MetricFacilityUtilization]
	quality := r.Series[sim.MetricHealthcareQuality]

	return []RecommendationGroup{
		{
			Heading: "Facility Utilization",
			Items: []string{
				pick(util.Mean > HighUtilizationMean, "Increase capacity", "Optimize resource allocation"),
				pick(util.Std > UtilizationSpreadMax, "Implement load balancing", "Maintain current distribution"),
			},
		},
		{
			Heading: "Healthcare Quality",
			Items: []string{
				pick(quality.Mean < LowQualityMean, "Focus on quality improvement initiatives", "Maintain quality standards"),
				pick(quality.Std > QualitySpreadMax, "Address quality variations", "Continue current practices"),
			},
		},
		{
			Heading: "System-wide Recommendations",
			Items: []string{
				pick(util.Trend == TrendIncreasing, "Consider expanding healthcare infrastructure", "Optimize existing infrastructure"),
				pick(quality.Trend == TrendDecreasing, "Implement quality enhancement programs", "Maintain quality improvement initiatives"),
			},
		},
	}
}

// RecommendationGroup is one numbered block of the recommendations section.
type RecommendationGroup struct {
	Heading string
	Items   []string
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

var seriesTitles = map[sim.MetricName]string{
	sim.MetricFacilityUtilization:   "Facility Utilization",
	sim.MetricHealthcareQuality:     "Healthcare Quality",
	sim.MetricInsuranceCoverage:     "Insurance Coverage",
	sim.MetricDigitalHealthAdoption: "Digital Health Adoption",
}

// Write renders the report as plain text.
func (r Report) Write(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Healthcare System Simulation Report\n")
	b.WriteString("===================================\n")
	if r.Days > 0 {
		fmt.Fprintf(&b, "Simulated period: %s to %s (%d days)\n",
			r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly), r.Days)
	} else {
		b.WriteString("Simulated period: no days simulated\n")
	}

	for _, name := range sim.MetricNames {
		s := r.Series[name]
		title := seriesTitles[name] + " Analysis"
		fmt.Fprintf(&b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
		fmt.Fprintf(&b, "Mean:               %.2f%%\n", s.Mean*100)
		fmt.Fprintf(&b, "Standard Deviation: %.2f%%\n", s.Std*100)
		fmt.Fprintf(&b, "Minimum:            %.2f%%\n", s.Min*100)
		fmt.Fprintf(&b, "Maximum:            %.2f%%\n", s.Max*100)
		fmt.Fprintf(&b, "Trend:              %s\n", s.Trend)
	}

	b.WriteString("\nRecommendations\n---------------\n")
	for i, group := range r.Recommendations() {
		fmt.Fprintf(&b, "%d. %s:\n", i+1, group.Heading)
		for _, item := range group.Items {
			fmt.Fprintf(&b, "   - %s\n", item)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
