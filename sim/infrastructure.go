package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Infrastructure owns facilities and their resources. It computes daily
// utilization observations and holds the authoritative quality scores.
type Infrastructure struct {
	facilities *Registry[*Facility]
	resources  *Registry[*Resource]

	staffingRatio float64
	noiseStd      float64
}

// NewInfrastructure creates an empty Infrastructure component.
// staffingRatio is the staff-per-bed ratio at which a facility is fully
// utilized; noiseStd is the std of the daily Gaussian perturbation.
func NewInfrastructure(staffingRatio, noiseStd float64) *Infrastructure {
	return &Infrastructure{
		facilities:    NewRegistry[*Facility]("facility"),
		resources:     NewRegistry[*Resource]("resource"),
		staffingRatio: staffingRatio,
		noiseStd:      noiseStd,
	}
}

// AddFacility registers f. Returns ErrDuplicateKey if the id is taken.
func (in *Infrastructure) AddFacility(f *Facility) error {
	return in.facilities.Add(f)
}

// Facility returns the facility with the given id.
func (in *Infrastructure) Facility(id string) (*Facility, bool) {
	return in.facilities.Get(id)
}

// Facilities exposes the facility registry for ordered iteration.
func (in *Infrastructure) Facilities() *Registry[*Facility] {
	return in.facilities
}

// AddResource registers r. Returns ErrDuplicateKey if the id is taken.
func (in *Infrastructure) AddResource(r *Resource) error {
	return in.resources.Add(r)
}

// Resource returns the resource with the given id.
func (in *Infrastructure) Resource(id string) (*Resource, bool) {
	return in.resources.Get(id)
}

// FacilityResources returns the resources held by facilityID in insertion order.
func (in *Infrastructure) FacilityResources(facilityID string) []*Resource {
	var out []*Resource
	in.resources.Each(func(r *Resource) {
		if r.FacilityID == facilityID {
			out = append(out, r)
		}
	})
	return out
}

// BaselineUtilization is the staffing-derived utilization before noise:
// min(staff / (capacity * staffingRatio), 1). Equipment does not enter it.
// A facility without capacity has no utilization.
func (in *Infrastructure) BaselineUtilization(f *Facility) float64 {
	if f.Capacity <= 0 || f.StaffCount <= 0 {
		return 0.0
	}
	return min(float64(f.StaffCount)/(float64(f.Capacity)*in.staffingRatio), 1.0)
}

// GetUtilization returns one observation of the facility's utilization in
// [0,1]: the baseline plus a fresh N(0, noiseStd) draw from rng, clamped.
// Unknown facilities report 0 without consuming randomness.
func (in *Infrastructure) GetUtilization(facilityID string, rng *rand.Rand) float64 {
	f, ok := in.facilities.Get(facilityID)
	if !ok {
		return 0.0
	}
	noise := rng.NormFloat64() * in.noiseStd
	return clamp01(in.BaselineUtilization(f) + noise)
}

// UpdateQuality clamps score to [0,1] and stores it on the facility.
// Unknown facilities are ignored.
func (in *Infrastructure) UpdateQuality(facilityID string, score float64) {
	f, ok := in.facilities.Get(facilityID)
	if !ok {
		logrus.Debugf("UpdateQuality: unknown facility %q ignored", facilityID)
		return
	}
	f.QualityScore = clamp01(score)
}
