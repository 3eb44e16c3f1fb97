// sim/simulator.go
package sim

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/healthsim/healthsim/sim/trace"
)

// SimulatorState is the lifecycle state of a Simulator.
type SimulatorState string

const (
	StateNotStarted SimulatorState = "not_started"
	StateRunning    SimulatorState = "running"
	StateCompleted  SimulatorState = "completed"
)

// FacilitySummary is a point-in-time view of one facility.
type FacilitySummary struct {
	Utilization float64
	Quality     float64
	Funding     float64
}

// PatientSummary is a point-in-time view of one patient.
type PatientSummary struct {
	InsuranceCoverage    float64
	TelemedicineSessions int
	HealthRecord         map[string]any
}

// Simulator advances the healthcare network one simulated day at a time and
// aggregates component state into daily metric series.
//
// Data flows simulator → components → simulator; components never call
// each other. Cross-component joins (worker → facility) happen here.
type Simulator struct {
	StartDate   time.Time
	EndDate     time.Time
	CurrentDate time.Time
	StepCount   int

	Infrastructure *Infrastructure
	Workforce      *Workforce
	Financing      *Financing
	DigitalHealth  *DigitalHealth

	Metrics *Metrics
	Trace   *trace.SimulationTrace

	locations  *Registry[*Location]
	patients   *Registry[*Patient]
	treatments *Registry[*Treatment]

	config    EngineConfig
	rng       *PartitionedRNG
	observers []StepObserver
}

// NewSimulator creates a simulator over [start, end). Returns ErrInvalidRange
// if end is not after start and ErrInvalidConfig for unusable parameters.
func NewSimulator(start, end time.Time, cfg EngineConfig) (*Simulator, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("start %s, end %s: %w", start.Format(time.DateOnly), end.Format(time.DateOnly), ErrInvalidRange)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.CoveragePolicy == nil {
		cfg.CoveragePolicy = DefaultEngineConfig().CoveragePolicy
	}
	if cfg.TraceLevel == "" {
		cfg.TraceLevel = trace.TraceLevelNone
	}

	s := &Simulator{
		StartDate:      start,
		EndDate:        end,
		CurrentDate:    start,
		Infrastructure: NewInfrastructure(cfg.StaffingRatio, cfg.UtilizationNoiseStd),
		Workforce:      NewWorkforce(),
		Financing:      NewFinancing(),
		DigitalHealth:  NewDigitalHealth(),
		Metrics:        NewMetrics(),
		locations:      NewRegistry[*Location]("location"),
		patients:       NewRegistry[*Patient]("patient"),
		treatments:     NewRegistry[*Treatment]("treatment"),
		config:         cfg,
		rng:            NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
	}
	if cfg.TraceLevel == trace.TraceLevelEvents {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}
	return s, nil
}

// Config returns the parameters the simulator was built with.
func (s *Simulator) Config() EngineConfig { return s.config }

// AddObserver registers o to be notified after every simulated day.
func (s *Simulator) AddObserver(o StepObserver) {
	s.observers = append(s.observers, o)
}

// === Registration ===

// AddLocation registers l. A non-empty ParentID must name a location added earlier.
func (s *Simulator) AddLocation(l *Location) error {
	if l.ParentID != "" && !s.locations.Has(l.ParentID) {
		return fmt.Errorf("location %q parent %q: %w", l.ID, l.ParentID, ErrDanglingReference)
	}
	return s.locations.Add(l)
}

// Location returns the location with the given id.
func (s *Simulator) Location(id string) (*Location, bool) {
	return s.locations.Get(id)
}

// AddFacility registers f at an existing location and allocates the default
// funding. QualityScore must lie in [0, 1].
func (s *Simulator) AddFacility(f *Facility) error {
	if !s.locations.Has(f.LocationID) {
		return fmt.Errorf("facility %q location %q: %w", f.ID, f.LocationID, ErrDanglingReference)
	}
	if !inUnitInterval(f.QualityScore) {
		return fmt.Errorf("facility %q quality %v: %w", f.ID, f.QualityScore, ErrScoreOutOfRange)
	}
	if err := s.Infrastructure.AddFacility(f); err != nil {
		return err
	}
	s.Financing.AllocateFunding(f.ID, s.config.DefaultFacilityFunding)
	return nil
}

// AddHealthcareWorker registers w at an existing facility and assigns the
// initial training program. PerformanceScore must lie in [0, 1].
func (s *Simulator) AddHealthcareWorker(w *Worker) error {
	if _, ok := s.Infrastructure.Facility(w.FacilityID); !ok {
		return fmt.Errorf("worker %q facility %q: %w", w.ID, w.FacilityID, ErrDanglingReference)
	}
	if !inUnitInterval(w.PerformanceScore) {
		return fmt.Errorf("worker %q performance %v: %w", w.ID, w.PerformanceScore, ErrScoreOutOfRange)
	}
	if err := s.Workforce.AddWorker(w); err != nil {
		return err
	}
	if s.config.InitialTraining != "" {
		s.Workforce.AssignTraining(w.ID, s.config.InitialTraining)
	}
	return nil
}

// AddPatient registers p at an existing location, sets its coverage with
// policy (the configured default when nil) and opens its health record.
func (s *Simulator) AddPatient(p *Patient, policy CoveragePolicy) error {
	if !s.locations.Has(p.LocationID) {
		return fmt.Errorf("patient %q location %q: %w", p.ID, p.LocationID, ErrDanglingReference)
	}
	if err := s.patients.Add(p); err != nil {
		return err
	}
	if policy == nil {
		policy = s.config.CoveragePolicy
	}
	s.Financing.SetCoverage(p.ID, policy(p))
	s.DigitalHealth.UpdateRecord(p.ID, map[string]any{
		"patient_info": map[string]any{
			"name":   p.Name,
			"age":    p.Age,
			"gender": p.Gender,
		},
		"medical_history":    slices.Clone(p.MedicalHistory),
		"current_conditions": slices.Clone(p.CurrentConditions),
	})
	return nil
}

// Patient returns the patient with the given id.
func (s *Simulator) Patient(id string) (*Patient, bool) {
	return s.patients.Get(id)
}

// AddTreatment adds t to the static treatment catalog.
func (s *Simulator) AddTreatment(t *Treatment) error {
	return s.treatments.Add(t)
}

// Treatment returns the catalog treatment with the given id.
func (s *Simulator) Treatment(id string) (*Treatment, bool) {
	return s.treatments.Get(id)
}

// AddResource registers r at an existing facility.
func (s *Simulator) AddResource(r *Resource) error {
	if _, ok := s.Infrastructure.Facility(r.FacilityID); !ok {
		return fmt.Errorf("resource %q facility %q: %w", r.ID, r.FacilityID, ErrDanglingReference)
	}
	return s.Infrastructure.AddResource(r)
}

// === Stepping ===

// State reports where the simulator is in its lifecycle.
func (s *Simulator) State() SimulatorState {
	switch {
	case !s.CurrentDate.Before(s.EndDate):
		return StateCompleted
	case s.CurrentDate.Equal(s.StartDate):
		return StateNotStarted
	default:
		return StateRunning
	}
}

// Step simulates one day and advances CurrentDate by exactly one day.
// Returns ErrSimulationComplete once CurrentDate has reached EndDate.
func (s *Simulator) Step() error {
	if !s.CurrentDate.Before(s.EndDate) {
		return fmt.Errorf("step at %s: %w", s.CurrentDate.Format(time.DateOnly), ErrSimulationComplete)
	}

	utilization, quality := s.simulateFacilityOperations()
	s.simulatePatientCare()
	s.simulateWorkforceDevelopment()
	coverage, adoption := s.calculateSystemMetrics()

	day := s.CurrentDate
	values := map[MetricName]float64{
		MetricFacilityUtilization:   utilization,
		MetricHealthcareQuality:     quality,
		MetricInsuranceCoverage:     coverage,
		MetricDigitalHealthAdoption: adoption,
	}
	for _, name := range MetricNames {
		s.Metrics.append(name, day, values[name])
	}
	logrus.Debugf("[day %s] utilization=%.4f quality=%.4f coverage=%.4f adoption=%.4f",
		day.Format(time.DateOnly), utilization, quality, coverage, adoption)
	for _, o := range s.observers {
		o.ObserveStep(day, values)
	}

	s.CurrentDate = s.CurrentDate.AddDate(0, 0, 1)
	s.StepCount++
	return nil
}

// Run steps until the end date. Calling Run on a completed simulator is a no-op.
func (s *Simulator) Run() {
	if s.State() == StateCompleted {
		return
	}
	logrus.Infof("Starting simulation %s → %s: %d facilities, %d workers, %d patients",
		s.StartDate.Format(time.DateOnly), s.EndDate.Format(time.DateOnly),
		s.Infrastructure.Facilities().Len(), s.Workforce.Workers().Len(), s.patients.Len())
	for {
		if err := s.Step(); err != nil {
			if errors.Is(err, ErrSimulationComplete) {
				break
			}
			logrus.Errorf("step failed: %v", err)
			break
		}
	}
	logrus.Infof("Simulation ended after %d days", s.StepCount)
}

// GetMetrics returns a copy of every daily metric series.
func (s *Simulator) GetMetrics() map[MetricName][]MetricPoint {
	return s.Metrics.Snapshot()
}

// simulateFacilityOperations observes every facility, writes the quality
// estimate back to Infrastructure and returns the daily means.
func (s *Simulator) simulateFacilityOperations() (float64, float64) {
	rng := s.rng.ForSubsystem(SubsystemInfrastructure)
	perf := s.Workforce.MeanPerformanceByFacility()

	var utilizations, qualities []float64
	s.Infrastructure.Facilities().Each(func(f *Facility) {
		utilizations = append(utilizations, s.Infrastructure.GetUtilization(f.ID, rng))
		q := s.estimateQuality(f, perf)
		s.Infrastructure.UpdateQuality(f.ID, q)
		qualities = append(qualities, q)
	})
	return mean(utilizations), mean(qualities)
}

// simulatePatientCare draws one visit per known patient per day.
func (s *Simulator) simulatePatientCare() {
	rng := s.rng.ForSubsystem(SubsystemPatientFlow)
	day := s.CurrentDate
	for _, patientID := range s.Financing.CoveredPatients() {
		if rng.Float64() >= s.config.VisitProbability {
			continue
		}
		s.DigitalHealth.RecordSession(patientID, day)
		s.DigitalHealth.UpdateRecord(patientID, map[string]any{
			"last_visit": day.Format(time.DateOnly),
		})
		if p, ok := s.patients.Get(patientID); ok {
			visit := day
			p.LastVisit = &visit
		}
		if s.Trace.Enabled() {
			s.Trace.RecordVisit(trace.VisitRecord{PatientID: patientID, Date: day})
		}
	}
}

// simulateWorkforceDevelopment applies the training-completion rule to every worker.
func (s *Simulator) simulateWorkforceDevelopment() {
	rng := s.rng.ForSubsystem(SubsystemWorkforce)
	for _, workerID := range s.Workforce.Workers().IDs() {
		program, completed := s.Workforce.CompleteTraining(workerID, s.config.TrainingProbability, rng)
		if completed && s.Trace.Enabled() {
			s.Trace.RecordTraining(trace.TrainingRecord{WorkerID: workerID, Program: program, Date: s.CurrentDate})
		}
	}
}

// calculateSystemMetrics returns the mean coverage and the share of known
// patients holding an electronic record.
func (s *Simulator) calculateSystemMetrics() (float64, float64) {
	coverage := s.Financing.GetCoverageRate()
	adoption := 0.0
	if n := s.Financing.CoverageCount(); n > 0 {
		adoption = float64(s.DigitalHealth.RecordCount()) / float64(n)
	}
	return coverage, adoption
}

// estimateQuality blends mean worker performance with the equipment score,
// clamped to [0,1]. Facilities without workers keep their stored quality score.
// The daily metric, the stored score and FacilitySummary all use this value.
func (s *Simulator) estimateQuality(f *Facility, perf map[string]float64) float64 {
	p, ok := perf[f.ID]
	if !ok {
		return clamp01(f.QualityScore)
	}
	return clamp01(p*s.config.WorkerQualityWeight + s.equipmentScore(f)*s.config.EquipmentQualityWeight)
}

// equipmentScore is the mean over equipment kinds of min(count/saturation, 1),
// summed in kind order. An empty inventory scores 0.5.
func (s *Simulator) equipmentScore(f *Facility) float64 {
	if len(f.Equipment) == 0 {
		return 0.5
	}
	scores := make([]float64, 0, len(f.Equipment))
	for _, kind := range slices.Sorted(maps.Keys(f.Equipment)) {
		scores = append(scores, min(float64(f.Equipment[kind])/float64(s.config.EquipmentSaturation), 1.0))
	}
	return mean(scores)
}

// === Summaries ===

// FacilitySummary reports a fresh utilization observation, the quality
// estimate and funding. Uses its own RNG stream; never perturbs Step.
func (s *Simulator) FacilitySummary(facilityID string) FacilitySummary {
	summary := FacilitySummary{Funding: s.Financing.Funding(facilityID)}
	f, ok := s.Infrastructure.Facility(facilityID)
	if !ok {
		return summary
	}
	summary.Utilization = s.Infrastructure.GetUtilization(facilityID, s.rng.ForSubsystem(SubsystemSummary))
	summary.Quality = s.estimateQuality(f, s.Workforce.MeanPerformanceByFacility())
	return summary
}

// PatientSummary reports coverage, session count and the health record.
func (s *Simulator) PatientSummary(patientID string) PatientSummary {
	return PatientSummary{
		InsuranceCoverage:    s.Financing.Coverage(patientID),
		TelemedicineSessions: s.DigitalHealth.SessionCount(patientID),
		HealthRecord:         s.DigitalHealth.GetHistory(patientID),
	}
}
