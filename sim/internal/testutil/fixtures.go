// Package testutil provides shared test fixtures for the healthcare
// simulator. It is used across sim/ and its sub-package tests.
package testutil

import (
	"time"

	"github.com/healthsim/healthsim/sim"
)

// Date returns midnight UTC on the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// District returns a root location with the given id.
func District(id string) *sim.Location {
	return &sim.Location{
		ID:         id,
		Name:       "District " + id,
		Type:       sim.LocationDistrict,
		Population: 500_000,
	}
}

// Facility returns a facility with capacity 100, staff 20 and quality 0.8
// at the given location.
func Facility(id, locationID string) *sim.Facility {
	return &sim.Facility{
		ID:                id,
		Name:              "Facility " + id,
		Type:              "secondary_hospital",
		LocationID:        locationID,
		Capacity:          100,
		StaffCount:        20,
		Equipment:         map[string]int{"xray": 2, "mri": 1},
		Services:          []string{"emergency", "surgery"},
		QualityScore:      0.8,
		OperationalStatus: "operational",
	}
}

// Worker returns a doctor with performance 0.9 at the given facility.
func Worker(id, facilityID string) *sim.Worker {
	return &sim.Worker{
		ID:               id,
		Name:             "Worker " + id,
		Type:             "doctor",
		Specialization:   "general_medicine",
		FacilityID:       facilityID,
		ExperienceYears:  10,
		Qualifications:   []string{"MBBS"},
		Skills:           []string{"diagnosis", "treatment"},
		PerformanceScore: 0.9,
	}
}

// Patient returns an insured patient at the given location.
func Patient(id, locationID string) *sim.Patient {
	return &sim.Patient{
		ID:                  id,
		Name:                "Patient " + id,
		Age:                 35,
		Gender:              "female",
		LocationID:          locationID,
		InsuranceStatus:     sim.Insured,
		CurrentConditions:   []string{"hypertension"},
		SocioeconomicStatus: sim.SocioeconomicMiddle,
	}
}

// NewNetwork builds a simulator over [start, end) holding one district,
// one facility, one worker and one patient with the given coverage rate.
// Entity ids are "d1", "f1", "w1" and "p1".
func NewNetwork(start, end time.Time, cfg sim.EngineConfig, coverage float64) (*sim.Simulator, error) {
	s, err := sim.NewSimulator(start, end, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.AddLocation(District("d1")); err != nil {
		return nil, err
	}
	if err := s.AddFacility(Facility("f1", "d1")); err != nil {
		return nil, err
	}
	if err := s.AddHealthcareWorker(Worker("w1", "f1")); err != nil {
		return nil, err
	}
	if err := s.AddPatient(Patient("p1", "d1"), sim.FlatCoverage(coverage)); err != nil {
		return nil, err
	}
	return s, nil
}
