package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFacility(id string, capacity, staff int) *Facility {
	return &Facility{
		ID:           id,
		Type:         "health_center",
		LocationID:   "loc",
		Capacity:     capacity,
		StaffCount:   staff,
		Equipment:    map[string]int{},
		QualityScore: 0.5,
	}
}

func TestInfrastructure_BaselineUtilization(t *testing.T) {
	infra := NewInfrastructure(0.1, 0.1)
	tests := []struct {
		name     string
		capacity int
		staff    int
		want     float64
	}{
		{"understaffed", 100, 5, 0.5},
		{"exactly staffed", 100, 10, 1.0},
		{"overstaffed saturates", 100, 20, 1.0},
		{"zero capacity", 0, 20, 0.0},
		{"negative capacity", -5, 20, 0.0},
		{"no staff", 100, 0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.BaselineUtilization(newTestFacility("f", tt.capacity, tt.staff))
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestInfrastructure_GetUtilization_AlwaysInUnitInterval(t *testing.T) {
	// GIVEN noise large enough to push observations far outside [0,1]
	infra := NewInfrastructure(0.1, 5.0)
	for _, f := range []*Facility{
		newTestFacility("full", 100, 50),
		newTestFacility("empty", 100, 0),
		newTestFacility("half", 100, 5),
		newTestFacility("nocap", 0, 10),
	} {
		assert.NoError(t, infra.AddFacility(f))
	}
	rng := newRandFromSeed(7)

	// WHEN many observations are drawn
	// THEN every one lies in [0,1]
	for i := 0; i < 500; i++ {
		for _, id := range infra.Facilities().IDs() {
			u := infra.GetUtilization(id, rng)
			assert.GreaterOrEqual(t, u, 0.0)
			assert.LessOrEqual(t, u, 1.0)
		}
	}
}

func TestInfrastructure_GetUtilization_UnknownFacilityConsumesNoRandomness(t *testing.T) {
	infra := NewInfrastructure(0.1, 0.1)
	rng := newRandFromSeed(11)
	ref := newRandFromSeed(11)

	assert.Equal(t, 0.0, infra.GetUtilization("ghost", rng))
	assert.Equal(t, ref.Float64(), rng.Float64())
}

func TestInfrastructure_GetUtilization_ZeroNoiseIsBaseline(t *testing.T) {
	infra := NewInfrastructure(0.1, 0)
	assert.NoError(t, infra.AddFacility(newTestFacility("f", 100, 7)))
	assert.InDelta(t, 0.7, infra.GetUtilization("f", newRandFromSeed(1)), 1e-12)
}

func TestInfrastructure_UpdateQuality_Clamps(t *testing.T) {
	infra := NewInfrastructure(0.1, 0.1)
	f := newTestFacility("f", 10, 1)
	assert.NoError(t, infra.AddFacility(f))

	infra.UpdateQuality("f", 1.7)
	assert.Equal(t, 1.0, f.QualityScore)
	infra.UpdateQuality("f", -0.2)
	assert.Equal(t, 0.0, f.QualityScore)
	infra.UpdateQuality("f", 0.42)
	assert.Equal(t, 0.42, f.QualityScore)
	infra.UpdateQuality("f", math.NaN())
	assert.Equal(t, 0.0, f.QualityScore)

	// unknown facility is a no-op
	infra.UpdateQuality("ghost", 0.9)
	_, ok := infra.Facility("ghost")
	assert.False(t, ok)
}

func TestInfrastructure_AddFacility_Duplicate(t *testing.T) {
	infra := NewInfrastructure(0.1, 0.1)
	assert.NoError(t, infra.AddFacility(newTestFacility("f", 10, 1)))
	err := infra.AddFacility(newTestFacility("f", 20, 2))
	assert.True(t, errors.Is(err, ErrDuplicateKey))
}

func TestInfrastructure_FacilityResources(t *testing.T) {
	infra := NewInfrastructure(0.1, 0.1)
	assert.NoError(t, infra.AddResource(&Resource{ID: "r1", FacilityID: "a"}))
	assert.NoError(t, infra.AddResource(&Resource{ID: "r2", FacilityID: "b"}))
	assert.NoError(t, infra.AddResource(&Resource{ID: "r3", FacilityID: "a"}))

	var ids []string
	for _, r := range infra.FacilityResources("a") {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r1", "r3"}, ids)
	assert.Empty(t, infra.FacilityResources("none"))
}
