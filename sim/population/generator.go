// Package population generates reproducible synthetic healthcare networks
// and loads them into a simulator.
package population

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/healthsim/healthsim/sim"
)

var (
	genders          = []string{"male", "female"}
	insuranceStatus  = []sim.InsuranceStatus{sim.Insured, sim.Uninsured, sim.Partial}
	socioeconomic    = []sim.SocioeconomicStatus{sim.SocioeconomicLow, sim.SocioeconomicMiddle, sim.SocioeconomicHigh}
	resourceStatuses = []sim.ResourceStatus{sim.ResourceActive, sim.ResourceMaintenance, sim.ResourceRetired}
	maintenanceKinds = []string{"preventive", "corrective", "predictive"}

	chronicConditions = []string{"hypertension", "diabetes", "asthma", "heart_disease", "arthritis", "cancer", "thyroid_disorder"}
	historyTreatments = []string{"medication", "surgery", "therapy"}
	historyStatuses   = []string{"active", "resolved", "chronic"}
	currentConditions = []string{"fever", "cough", "headache", "back_pain", "joint_pain", "fatigue", "anxiety", "depression"}
	baseServices      = []string{"general_consultation", "emergency_care"}
)

// Population is a generated network. Each slice is ordered so that every
// entity appears after the entities it references.
type Population struct {
	Locations  []*sim.Location
	Facilities []*sim.Facility
	Workers    []*sim.Worker
	Resources  []*sim.Resource
	Patients   []*sim.Patient
	Treatments []*sim.Treatment
}

// Generate builds a network sized by cfg. Dates (diagnoses, maintenance)
// are placed relative to reference. Deterministic given the same cfg and
// reference.
func Generate(cfg Config, reference time.Time) (*Population, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &generator{
		rng:       sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)).ForSubsystem(sim.SubsystemPopulation),
		reference: reference,
	}
	pop := &Population{}

	for d := 0; d < cfg.Districts; d++ {
		district := g.location(sim.LocationDistrict, "")
		pop.Locations = append(pop.Locations, district)
		for u := 0; u < cfg.UpazilasPerDistrict; u++ {
			upazila := g.location(sim.LocationUpazila, district.ID)
			pop.Locations = append(pop.Locations, upazila)
			for n := 0; n < cfg.UnionsPerUpazila; n++ {
				union := g.location(sim.LocationUnion, upazila.ID)
				pop.Locations = append(pop.Locations, union)

				for f := 0; f < cfg.FacilitiesPerUnion; f++ {
					facility := g.facility(union.ID)
					pop.Facilities = append(pop.Facilities, facility)
					for w := 0; w < min(facility.StaffCount, cfg.MaxWorkersPerFacility); w++ {
						pop.Workers = append(pop.Workers, g.worker(facility.ID))
					}
					for r := 0; r < cfg.ResourcesPerFacility; r++ {
						pop.Resources = append(pop.Resources, g.resource(facility.ID))
					}
				}
				for p := 0; p < cfg.PatientsPerUnion; p++ {
					pop.Patients = append(pop.Patients, g.patient(union.ID))
				}
			}
		}
	}
	for t := 0; t < cfg.Treatments; t++ {
		pop.Treatments = append(pop.Treatments, g.treatment())
	}

	logrus.Debugf("Generated population: %d locations, %d facilities, %d workers, %d resources, %d patients, %d treatments",
		len(pop.Locations), len(pop.Facilities), len(pop.Workers), len(pop.Resources), len(pop.Patients), len(pop.Treatments))
	return pop, nil
}

// Loader receives generated entities. *sim.Simulator satisfies it.
type Loader interface {
	AddLocation(*sim.Location) error
	AddFacility(*sim.Facility) error
	AddHealthcareWorker(*sim.Worker) error
	AddResource(*sim.Resource) error
	AddPatient(*sim.Patient, sim.CoveragePolicy) error
	AddTreatment(*sim.Treatment) error
}

// Load inserts every entity into dst, referenced entities first. policy is
// passed to every AddPatient call (nil selects the simulator default).
func (p *Population) Load(dst Loader, policy sim.CoveragePolicy) error {
	for _, l := range p.Locations {
		if err := dst.AddLocation(l); err != nil {
			return fmt.Errorf("loading population: %w", err)
		}
	}
	for _, f := range p.Facilities {
		if err := dst.AddFacility(f); err != nil {
			return fmt.Errorf("loading population: %w", err)
		}
	}
	for _, w := range p.Workers {
		if err := dst.AddHealthcareWorker(w); err != nil {
			return fmt.Errorf("loading population: %w", err)
		}
	}
	for _, r := range p.Resources {
		if err := dst.AddResource(r); err != nil {
			return fmt.Errorf("loading population: %w", err)
		}
	}
	for _, pt := range p.Patients {
		if err := dst.AddPatient(pt, policy); err != nil {
			return fmt.Errorf("loading population: %w", err)
		}
	}
	for _, t := range p.Treatments {
		if err := dst.AddTreatment(t); err != nil {
			return fmt.Errorf("loading population: %w", err)
		}
	}
	return nil
}

type generator struct {
	rng       *rand.Rand
	reference time.Time
}

// id draws a version-4 UUID from the seeded stream.
func (g *generator) id() string {
	u, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// *rand.Rand.Read never fails
		panic(fmt.Sprintf("uuid from seeded rng: %v", err))
	}
	return u.String()
}

func (g *generator) intIn(r sim.IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}

func (g *generator) floatIn(r sim.FloatRange) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

func (g *generator) daysAgo(maxDays int) time.Time {
	return g.reference.AddDate(0, 0, -g.rng.Intn(maxDays+1))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// sample returns n distinct items in draw order.
func sample[T any](rng *rand.Rand, items []T, n int) []T {
	n = min(n, len(items))
	out := make([]T, 0, n)
	for _, i := range rng.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out
}

func title(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func (g *generator) location(kind sim.LocationType, parentID string) *sim.Location {
	return &sim.Location{
		ID:         g.id(),
		Name:       fmt.Sprintf("%s_%d", title(string(kind)), 1+g.rng.Intn(100)),
		Type:       kind,
		Population: g.intIn(sim.IntRange{Min: 1000, Max: 1_000_000}),
		Coordinates: sim.Coordinates{
			Latitude:  g.floatIn(sim.FloatRange{Min: 20.0, Max: 26.0}),
			Longitude: g.floatIn(sim.FloatRange{Min: 88.0, Max: 92.0}),
		},
		ParentID: parentID,
	}
}

func (g *generator) facility(locationID string) *sim.Facility {
	ft := pick(g.rng, sim.FacilityTypes)
	capacity := g.intIn(ft.Capacity)
	equipment := make(map[string]int, len(ft.RequiredEquipment))
	for _, kind := range ft.RequiredEquipment {
		equipment[kind] = g.rng.Intn(6)
	}
	services := append(append([]string{}, baseServices...), ft.Services...)
	return &sim.Facility{
		ID:                g.id(),
		Name:              fmt.Sprintf("%s %d", title(ft.Name), 1+g.rng.Intn(100)),
		Type:              ft.Name,
		LocationID:        locationID,
		Capacity:          capacity,
		StaffCount:        g.intIn(sim.IntRange{Min: 5, Max: max(5, capacity/2)}),
		Equipment:         equipment,
		Services:          services,
		QualityScore:      g.floatIn(sim.FloatRange{Min: 0.5, Max: 1.0}),
		OperationalStatus: "active",
	}
}

func (g *generator) worker(facilityID string) *sim.Worker {
	wt := pick(g.rng, sim.WorkerTypes)
	return &sim.Worker{
		ID:               g.id(),
		Name:             fmt.Sprintf("Worker_%d", 1+g.rng.Intn(1000)),
		Type:             wt.Name,
		Specialization:   pick(g.rng, wt.Specializations),
		FacilityID:       facilityID,
		ExperienceYears:  g.intIn(wt.Experience),
		Qualifications:   sample(g.rng, wt.Qualifications, 1+g.rng.Intn(3)),
		Skills:           sample(g.rng, wt.Skills, 2+g.rng.Intn(3)),
		PerformanceScore: g.floatIn(sim.FloatRange{Min: 0.6, Max: 1.0}),
	}
}

func (g *generator) patient(locationID string) *sim.Patient {
	history := make([]sim.ConditionRecord, g.rng.Intn(4))
	for i := range history {
		history[i] = sim.ConditionRecord{
			Condition:     pick(g.rng, chronicConditions),
			DiagnosisDate: g.daysAgo(3650),
			Treatment:     pick(g.rng, historyTreatments),
			Status:        pick(g.rng, historyStatuses),
		}
	}
	return &sim.Patient{
		ID:                  g.id(),
		Name:                fmt.Sprintf("Patient_%d", 1+g.rng.Intn(1000)),
		Age:                 g.rng.Intn(101),
		Gender:              pick(g.rng, genders),
		LocationID:          locationID,
		InsuranceStatus:     pick(g.rng, insuranceStatus),
		MedicalHistory:      history,
		CurrentConditions:   sample(g.rng, currentConditions, g.rng.Intn(3)),
		SocioeconomicStatus: pick(g.rng, socioeconomic),
	}
}

func (g *generator) treatment() *sim.Treatment {
	tt := pick(g.rng, sim.TreatmentTypes)
	return &sim.Treatment{
		ID:                g.id(),
		Name:              fmt.Sprintf("%s %d", title(tt.Name), 1+g.rng.Intn(100)),
		Type:              tt.Name,
		Cost:              g.floatIn(tt.Cost),
		DurationMinutes:   g.intIn(tt.DurationMinutes),
		SuccessRate:       g.floatIn(sim.FloatRange{Min: 0.7, Max: 0.99}),
		ComplicationsRate: g.floatIn(sim.FloatRange{Min: 0.01, Max: 0.3}),
		RequiredEquipment: append([]string{}, tt.RequiredEquipment...),
		RequiredStaff:     append([]string{}, tt.RequiredStaff...),
	}
}

func (g *generator) resource(facilityID string) *sim.Resource {
	rt := pick(g.rng, sim.ResourceTypes)
	return &sim.Resource{
		ID:         g.id(),
		Name:       fmt.Sprintf("%s %d", title(rt.Name), 1+g.rng.Intn(100)),
		Type:       rt.Name,
		Quantity:   g.intIn(rt.Quantity),
		UnitCost:   g.floatIn(rt.UnitCost),
		FacilityID: facilityID,
		Status:     pick(g.rng, resourceStatuses),
		Maintenance: sim.MaintenanceSchedule{
			FrequencyDays:   rt.MaintenanceFrequencyDays,
			NextMaintenance: g.reference.AddDate(0, 0, 30+g.rng.Intn(336)),
			Kind:            pick(g.rng, maintenanceKinds),
		},
		LastMaintenance: g.daysAgo(365),
	}
}
