package report

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthsim/healthsim/sim"
)

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, SeriesSummary{Trend: TrendFlat}, Summarize(nil))
}

func TestSummarize_SinglePointHasZeroStd(t *testing.T) {
	s := Summarize([]float64{0.4})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 0.4, s.Mean)
	assert.Equal(t, 0.0, s.Std)
	assert.False(t, math.IsNaN(s.Std))
	assert.Equal(t, TrendFlat, s.Trend)
}

func TestSummarize_Statistics(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	// sample std of the classic example: sqrt(32/7)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.Std, 1e-12)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestSummarize_Trend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Trend
	}{
		{"rising", []float64{0.1, 0.9, 0.5}, TrendIncreasing},
		{"falling", []float64{0.5, 0.9, 0.1}, TrendDecreasing},
		{"same ends", []float64{0.5, 0.1, 0.5}, TrendFlat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.values).Trend)
		})
	}
}

func series(start time.Time, values ...float64) []sim.MetricPoint {
	out := make([]sim.MetricPoint, len(values))
	for i, v := range values {
		out[i] = sim.MetricPoint{Date: start.AddDate(0, 0, i), Value: v}
	}
	return out
}

func TestBuild_Recommendations(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("busy network with poor quality", func(t *testing.T) {
		// GIVEN high rising utilization and low falling quality
		r := Build(map[sim.MetricName][]sim.MetricPoint{
			sim.MetricFacilityUtilization: series(start, 0.85, 0.9, 0.95),
			sim.MetricHealthcareQuality:   series(start, 0.6, 0.55, 0.5),
		})

		// WHEN recommendations are derived
		groups := r.Recommendations()

		// THEN capacity expansion and quality work are advised
		require.Len(t, groups, 3)
		assert.Equal(t, []string{"Increase capacity", "Maintain current distribution"}, groups[0].Items)
		assert.Equal(t, []string{"Focus on quality improvement initiatives", "Continue current practices"}, groups[1].Items)
		assert.Equal(t, []string{"Consider expanding healthcare infrastructure", "Implement quality enhancement programs"}, groups[2].Items)
		assert.Equal(t, 3, r.Days)
		assert.Equal(t, start, r.Start)
		assert.Equal(t, start.AddDate(0, 0, 2), r.End)
	})

	t.Run("volatile network", func(t *testing.T) {
		r := Build(map[sim.MetricName][]sim.MetricPoint{
			sim.MetricFacilityUtilization: series(start, 0.9, 0.1, 0.9, 0.1),
			sim.MetricHealthcareQuality:   series(start, 0.95, 0.5, 0.95, 0.5),
		})
		groups := r.Recommendations()
		assert.Equal(t, "Optimize resource allocation", groups[0].Items[0])
		assert.Equal(t, "Implement load balancing", groups[0].Items[1])
		assert.Equal(t, "Maintain quality standards", groups[1].Items[0])
		assert.Equal(t, "Address quality variations", groups[1].Items[1])
	})
}

func TestReport_Write(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	r := Build(map[sim.MetricName][]sim.MetricPoint{
		sim.MetricFacilityUtilization:   series(start, 0.5, 0.7),
		sim.MetricHealthcareQuality:     series(start, 0.66, 0.66),
		sim.MetricInsuranceCoverage:     series(start, 0.7, 0.7),
		sim.MetricDigitalHealthAdoption: series(start, 1, 1),
	})

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	out := buf.String()

	assert.Contains(t, out, "Simulated period: 2023-01-01 to 2023-01-02 (2 days)")
	assert.Contains(t, out, "Facility Utilization Analysis")
	assert.Contains(t, out, "Digital Health Adoption Analysis")
	assert.Contains(t, out, "Mean:               60.00%")
	assert.Contains(t, out, "Trend:              increasing")
	assert.Contains(t, out, "3. System-wide Recommendations:")
}

func TestReport_Write_NoDays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build(nil).Write(&buf))
	assert.Contains(t, buf.String(), "no days simulated")
}
